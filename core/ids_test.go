package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDocumentName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain file", "notes.txt", "notes_txt"},
		{"nested path", "reports/2024/summary.pdf", "reports_2024_summary_pdf"},
		{"multiple dots", "archive.tar.gz", "archive_tar_gz"},
		{"no separators", "readme", "readme"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeDocumentName(tc.input))
		})
	}
}

func TestDocumentID_Deterministic(t *testing.T) {
	first := DocumentID("reports/summary.pdf", 3)
	second := DocumentID("reports/summary.pdf", 3)

	assert.Equal(t, "reports_summary_pdf-page-3", first)
	assert.Equal(t, first, second, "same input must produce the same id")
}

func TestSourcepageFromFilePage(t *testing.T) {
	testCases := []struct {
		name     string
		filename string
		page     int
		expected string
	}{
		{"pdf first page", "report.pdf", 0, "report.pdf#page=1"},
		{"pdf later page", "report.pdf", 2, "report.pdf#page=3"},
		{"pdf nested path", "docs/report.pdf", 1, "report.pdf#page=2"},
		{"pdf uppercase extension", "REPORT.PDF", 0, "REPORT.PDF#page=1"},
		{"text file", "notes.txt", 0, "notes.txt"},
		{"text file ignores page", "notes.txt", 5, "notes.txt"},
		{"html nested path", "web/page.html", 0, "page.html"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SourcepageFromFilePage(tc.filename, tc.page))
		})
	}
}

func TestStorageURL(t *testing.T) {
	url := StorageURL("myaccount", "evidencefiles", "reports/summary.pdf")
	assert.Equal(t, "https://myaccount.blob.core.windows.net/evidencefiles/reports/summary.pdf", url)
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF("application/pdf", "file.bin"))
	assert.True(t, IsPDF("application/PDF", "file.bin"))
	assert.True(t, IsPDF("application/octet-stream", "file.pdf"))
	assert.True(t, IsPDF("", "FILE.PDF"))
	assert.False(t, IsPDF("text/plain", "notes.txt"))
}

func TestContentETag_Deterministic(t *testing.T) {
	a := ContentETag([]byte("hello world"))
	b := ContentETag([]byte("hello world"))
	c := ContentETag([]byte("hello worlds"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32) // 16 bytes hex encoded
}
