package storage

import (
	"fmt"
	"strings"
)

// ResolveBlobURL extracts the storage account and blob name from a blob URL,
// given the container the blob is expected to live in.
//
// "https://acct.blob.core.windows.net/evidencefiles/reports/a.pdf" with
// container "evidencefiles" resolves to account "acct" and name
// "reports/a.pdf".
func ResolveBlobURL(blobURL, container string) (account, name string, err error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(blobURL, "https://"), "http://")

	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidBlobURL, blobURL)
	}

	account = strings.SplitN(parts[0], ".", 2)[0]

	for i, part := range parts {
		if part == container && i+1 < len(parts) {
			name = strings.Join(parts[i+1:], "/")
			break
		}
	}
	if name == "" {
		return "", "", fmt.Errorf("%w: no %q segment in %s", ErrInvalidBlobURL, container, blobURL)
	}

	return account, name, nil
}
