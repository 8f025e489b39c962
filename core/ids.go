// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"path"
	"strings"
)

// NormalizeDocumentName converts a storage path into an index-safe identifier
// by replacing path separators and dots with underscores.
// "reports/summary.pdf" becomes "reports_summary_pdf".
func NormalizeDocumentName(name string) string {
	return strings.NewReplacer("/", "_", ".", "_").Replace(name)
}

// DocumentID derives the deterministic index document id for the section at
// batch position i (0-based). The same document name and position always
// produce the same id, which is what makes re-ingestion overwrite rather
// than duplicate.
func DocumentID(name string, i int) string {
	return fmt.Sprintf("%s-page-%d", NormalizeDocumentName(name), i)
}

// SourcepageFromFilePage returns the human-addressable anchor for a section.
// PDF documents get a 1-based page anchor; every other type resolves to the
// bare basename.
func SourcepageFromFilePage(filename string, page int) string {
	if strings.EqualFold(path.Ext(filename), ".pdf") {
		return fmt.Sprintf("%s#page=%d", path.Base(filename), page+1)
	}
	return path.Base(filename)
}

// StorageURL builds the public blob URL for a document from the storage
// account name, the container, and the document's storage path.
func StorageURL(account, container, name string) string {
	return fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s", account, container, name)
}

// IsPDF reports whether a document should be treated as a paginated PDF,
// either by its declared media type or by its name suffix.
func IsPDF(contentType, name string) bool {
	return strings.EqualFold(contentType, "application/pdf") ||
		strings.HasSuffix(strings.ToLower(name), ".pdf")
}
