package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/evidex/core"
	"github.com/poiesic/evidex/index"
)

// stubIndexClient answers every search with canned results and records the
// queries it receives.
type stubIndexClient struct {
	name      string
	results   *index.Results
	searchErr error
	queries   []index.Query
}

func (s *stubIndexClient) Name() string { return s.name }

func (s *stubIndexClient) UploadDocuments(ctx context.Context, docs []core.IndexDocument) ([]index.UploadResult, error) {
	return nil, nil
}

func (s *stubIndexClient) Search(ctx context.Context, q index.Query) (*index.Results, error) {
	s.queries = append(s.queries, q)
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	if s.results == nil {
		return &index.Results{}, nil
	}
	return s.results, nil
}

func (s *stubIndexClient) Close() error { return nil }

func primaryHit(fields map[string]any) index.Hit {
	return index.Hit{ID: "hit", Score: 1.0, Fields: fields}
}

func TestNewService_RequiresPrimary(t *testing.T) {
	_, err := NewService(nil)
	assert.ErrorIs(t, err, ErrPrimaryClientRequired)
}

func TestSearch_CountOnly(t *testing.T) {
	primary := &stubIndexClient{name: "primary", results: &index.Results{Total: 42}}
	service, err := NewService(primary)
	require.NoError(t, err)

	req := &Request{Programs: StringList{"VISTA"}}
	resp, err := service.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), resp.TotalCount)
	assert.Empty(t, resp.Results)
	assert.Equal(t, StringList{"VISTA"}, resp.AppliedFilters.Programs)

	require.Len(t, primary.queries, 1)
	q := primary.queries[0]
	assert.Equal(t, "*", q.Text)
	assert.Equal(t, 1, q.Top)
	assert.True(t, q.IncludeTotalCount)
	require.Len(t, q.Filters, 1)
	assert.Equal(t, "programs", q.Filters[0].Field)
}

func TestSearch_TrimsContentToSnippet(t *testing.T) {
	primary := &stubIndexClient{name: "primary", results: &index.Results{
		Total: 1,
		Hits: []index.Hit{primaryHit(map[string]any{
			"content": "<p>The youth mentoring program showed strong outcomes.</p>",
			"title":   "Mentoring Study",
			"domain":  "education",
		})},
	}}
	service, err := NewService(primary)
	require.NoError(t, err)

	resp, err := service.Search(context.Background(), &Request{SearchText: "youth"})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	result := resp.Results[0]
	assert.Equal(t, "The youth mentoring program showed strong outcomes.", result.Content)
	assert.Equal(t, "Mentoring Study", result.Title)
	assert.Equal(t, "education", result.Domain)
	assert.False(t, result.FoundInPDF)

	require.Len(t, primary.queries, 1)
	assert.Equal(t, "youth", primary.queries[0].Text)
	assert.Equal(t, primaryTop, primary.queries[0].Top)
}

func TestSearch_DropsEmptyResults(t *testing.T) {
	primary := &stubIndexClient{name: "primary", results: &index.Results{
		Total: 2,
		Hits: []index.Hit{
			primaryHit(map[string]any{"content": "nothing matching here", "title": "Empty"}),
			primaryHit(map[string]any{"content": "a youth program", "title": "Kept"}),
		},
	}}
	service, err := NewService(primary)
	require.NoError(t, err)

	resp, err := service.Search(context.Background(), &Request{SearchText: "youth"})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Kept", resp.Results[0].Title)
	assert.Equal(t, uint64(2), resp.TotalCount, "total count reflects the index, not the trimmed list")
}

func TestSearch_KeepsResultWithOnlyURL(t *testing.T) {
	primary := &stubIndexClient{name: "primary", results: &index.Results{
		Total: 1,
		Hits: []index.Hit{primaryHit(map[string]any{
			"content":       "no match in this text",
			"embedded_urls": []string{"https://example.com/a", "https://example.com/b"},
		})},
	}}
	service, err := NewService(primary)
	require.NoError(t, err)

	resp, err := service.Search(context.Background(), &Request{SearchText: "zebra"})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "https://example.com/a", resp.Results[0].URL)
}

func TestSearch_FiltersBoilerplatePDFs(t *testing.T) {
	primary := &stubIndexClient{name: "primary", results: &index.Results{
		Total: 1,
		Hits: []index.Hit{primaryHit(map[string]any{
			"content": "a youth program",
			"pdf_urls": []string{
				"https://example.com/files/Whistleblower_Rights_Employees_OGC.pdf",
				"https://example.com/files/Report.pdf",
				"https://example.com/files/Whistleblower_Rights_and_Remedies_Contractors_Grantees_OGC.pdf",
			},
		})},
	}}
	service, err := NewService(primary)
	require.NoError(t, err)

	resp, err := service.Search(context.Background(), &Request{SearchText: "youth"})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, []string{"https://example.com/files/Report.pdf"}, resp.Results[0].PDFURLs)
}

func TestSearch_EvidenceExchangeCrossCheck(t *testing.T) {
	primary := &stubIndexClient{name: "primary", results: &index.Results{
		Total: 1,
		Hits: []index.Hit{primaryHit(map[string]any{
			"content":  "a youth program",
			"domain":   "evidence-exchange",
			"pdf_urls": []string{"https://example.com/files/Report.pdf"},
		})},
	}}
	secondary := &stubIndexClient{name: "secondary", results: &index.Results{
		Total: 1,
		Hits: []index.Hit{primaryHit(map[string]any{
			"content": "This PDF discusses the youth program in detail.",
		})},
	}}

	service, err := NewService(primary, WithSecondary(secondary))
	require.NoError(t, err)

	resp, err := service.Search(context.Background(), &Request{SearchText: "youth"})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	result := resp.Results[0]
	assert.True(t, result.FoundInPDF)
	assert.Contains(t, result.PDFContent, "youth")

	require.Len(t, secondary.queries, 1)
	assert.Equal(t, secondaryTop, secondary.queries[0].Top)
}

func TestSearch_SecondaryQueriedOncePerBatch(t *testing.T) {
	hits := []index.Hit{
		primaryHit(map[string]any{
			"content":       "a youth program",
			"resource_type": "evidence-exchange",
			"pdf_urls":      []string{"https://example.com/a.pdf"},
		}),
		primaryHit(map[string]any{
			"content":  "another youth study",
			"domain":   "Evidence-Exchange",
			"pdf_urls": []string{"https://example.com/b.pdf"},
		}),
	}
	primary := &stubIndexClient{name: "primary", results: &index.Results{Total: 2, Hits: hits}}
	secondary := &stubIndexClient{name: "secondary"}

	service, err := NewService(primary, WithSecondary(secondary))
	require.NoError(t, err)

	_, err = service.Search(context.Background(), &Request{SearchText: "youth"})
	require.NoError(t, err)

	assert.Len(t, secondary.queries, 1)
}

func TestSearch_SecondaryFailureDoesNotFailSearch(t *testing.T) {
	primary := &stubIndexClient{name: "primary", results: &index.Results{
		Total: 1,
		Hits: []index.Hit{primaryHit(map[string]any{
			"content":  "a youth program",
			"domain":   "evidence-exchange",
			"pdf_urls": []string{"https://example.com/a.pdf"},
		})},
	}}
	secondary := &stubIndexClient{name: "secondary", searchErr: errors.New("unavailable")}

	service, err := NewService(primary, WithSecondary(secondary))
	require.NoError(t, err)

	resp, err := service.Search(context.Background(), &Request{SearchText: "youth"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.False(t, resp.Results[0].FoundInPDF)
}

func TestSearch_PrimaryErrorPropagates(t *testing.T) {
	searchErr := errors.New("index down")
	primary := &stubIndexClient{name: "primary", searchErr: searchErr}

	service, err := NewService(primary)
	require.NoError(t, err)

	_, err = service.Search(context.Background(), &Request{SearchText: "youth"})
	assert.ErrorIs(t, err, searchErr)
}

func TestPDFFilename(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/files/Report-Revised_508_1.pdf", "Report-Revised_508_1"},
		{"https://example.com/files/My%20Report.pdf", "My Report"},
		{"plain.pdf", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pdfFilename(tt.url), tt.url)
	}
}

func TestFirstURL(t *testing.T) {
	assert.Equal(t, "", firstURL(nil))
	assert.Equal(t, "a", firstURL([]string{"a", "b"}))
	assert.Equal(t, "a", firstURL([]any{"a", "b"}))
	assert.Equal(t, "a", firstURL("a;b;c"))
	assert.Equal(t, "", firstURL(42))
}
