package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() *IndexDocument {
	return &IndexDocument{
		ID:         "reports_summary_pdf-page-0",
		Content:    "some extracted text",
		Embedding:  []float32{0.1, 0.2, 0.3},
		Title:      "summary.pdf",
		Sourcefile: "reports/summary.pdf",
		Sourcepage: "summary.pdf#page=1",
		StorageURL: "https://acct.blob.core.windows.net/evidencefiles/reports/summary.pdf",
	}
}

func TestValidateIndexDocument_Valid(t *testing.T) {
	require.NoError(t, ValidateIndexDocument(validDocument()))
}

func TestValidateIndexDocument_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*IndexDocument)
		expected error
	}{
		{"empty id", func(d *IndexDocument) { d.ID = "" }, ErrEmptyID},
		{"empty content", func(d *IndexDocument) { d.Content = "" }, ErrEmptyContent},
		{"empty sourcefile", func(d *IndexDocument) { d.Sourcefile = "" }, ErrEmptySourcefile},
		{"nil embedding", func(d *IndexDocument) { d.Embedding = nil }, ErrEmptyEmbedding},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validDocument()
			tc.mutate(doc)
			err := ValidateIndexDocument(doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidIndexDocument)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestValidateIndexDocument_Nil(t *testing.T) {
	assert.ErrorIs(t, ValidateIndexDocument(nil), ErrInvalidIndexDocument)
}

func TestValidateBlobInfo(t *testing.T) {
	info := &BlobInfo{Container: "evidencefiles", Name: "a.txt"}
	require.NoError(t, ValidateBlobInfo(info))

	assert.ErrorIs(t, ValidateBlobInfo(nil), ErrInvalidBlobInfo)
	assert.ErrorIs(t, ValidateBlobInfo(&BlobInfo{Container: "evidencefiles"}), ErrEmptyBlobName)
	assert.ErrorIs(t, ValidateBlobInfo(&BlobInfo{Name: "a.txt"}), ErrEmptyContainer)
}
