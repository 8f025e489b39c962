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


package query

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/poiesic/evidex/index"
)

const (
	// evidenceExchange marks results whose PDFs are cross-checked against
	// the secondary index.
	evidenceExchange = "evidence-exchange"

	primaryTop   = 100
	secondaryTop = 5
)

var (
	primarySelectFields = []string{
		"content", "embedded_urls", "programs", "ages_studied",
		"focus_population", "domain", "subdomain_1", "subdomain_2",
		"subdomain_3", "resource_type", "pdf_urls", "title",
	}

	secondarySelectFields = []string{
		"content", "title", "sourcepage", "sourcefile", "storageUrl",
	}

	// excludedPDFs are boilerplate policy documents attached to most
	// records; they never corroborate a search hit.
	excludedPDFs = []string{
		"Whistleblower_Rights_Employees_OGC",
		"Whistleblower_Rights_and_Remedies_Contractors_Grantees_OGC",
	}
)

// Result is one processed search hit.
type Result struct {
	Content         string   `json:"content"`
	URL             string   `json:"url,omitempty"`
	Title           string   `json:"title"`
	Programs        []string `json:"programs"`
	AgesStudied     []string `json:"ages_studied"`
	FocusPopulation []string `json:"focus_population"`
	Domain          string   `json:"domain"`
	Subdomain1      string   `json:"subdomain_1"`
	Subdomain2      string   `json:"subdomain_2"`
	Subdomain3      string   `json:"subdomain_3"`
	ResourceType    string   `json:"resource_type"`
	PDFURLs         []string `json:"pdf_urls"`
	FoundInPDF      bool     `json:"found_in_pdf"`
	PDFContent      string   `json:"pdf_content,omitempty"`
}

// Response is the body returned to search callers.
type Response struct {
	Results        []Result       `json:"results,omitempty"`
	TotalCount     uint64         `json:"total_count"`
	AppliedFilters AppliedFilters `json:"applied_filters"`
}

// Service answers search requests against a primary index, optionally
// cross-checking evidence-exchange results against a secondary PDF index.
type Service struct {
	primary   index.Client
	secondary index.Client
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSecondary sets the secondary PDF index used for evidence-exchange
// cross-checks. Without one, cross-checking is skipped.
func WithSecondary(client index.Client) Option {
	return func(s *Service) {
		s.secondary = client
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewService creates a search service over the given primary index.
func NewService(primary index.Client, opts ...Option) (*Service, error) {
	if primary == nil {
		return nil, ErrPrimaryClientRequired
	}

	s := &Service{
		primary: primary,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Search executes a request. An empty search text returns only the total
// count of documents matching the filters; otherwise hits are trimmed to
// context snippets and results with no content, url, or PDFs are dropped.
func (s *Service) Search(ctx context.Context, req *Request) (*Response, error) {
	filters := req.Filters()
	s.logger.Info("search", "text", req.SearchText, "filter", FilterExpression(filters))

	if req.SearchText == "" {
		results, err := s.primary.Search(ctx, index.Query{
			Text:              "*",
			Filters:           filters,
			Fields:            []string{"id"},
			Top:               1,
			IncludeTotalCount: true,
		})
		if err != nil {
			return nil, err
		}
		return &Response{TotalCount: results.Total, AppliedFilters: req.Applied()}, nil
	}

	results, err := s.primary.Search(ctx, index.Query{
		Text:              req.SearchText,
		Filters:           filters,
		Fields:            primarySelectFields,
		Top:               primaryTop,
		IncludeTotalCount: true,
	})
	if err != nil {
		return nil, err
	}

	response := &Response{
		TotalCount:     results.Total,
		AppliedFilters: req.Applied(),
	}

	// The secondary query depends only on the search text, so one fetch
	// serves every evidence-exchange hit in the batch.
	var secondaryHits []index.Hit
	secondaryFetched := false

	for _, hit := range results.Hits {
		result := Result{
			Content:         SearchContext(fieldString(hit.Fields, "content"), req.SearchText),
			URL:             firstURL(hit.Fields["embedded_urls"]),
			Title:           fieldString(hit.Fields, "title"),
			Programs:        fieldStrings(hit.Fields, "programs"),
			AgesStudied:     fieldStrings(hit.Fields, "ages_studied"),
			FocusPopulation: fieldStrings(hit.Fields, "focus_population"),
			Domain:          fieldString(hit.Fields, "domain"),
			Subdomain1:      fieldString(hit.Fields, "subdomain_1"),
			Subdomain2:      fieldString(hit.Fields, "subdomain_2"),
			Subdomain3:      fieldString(hit.Fields, "subdomain_3"),
			ResourceType:    fieldString(hit.Fields, "resource_type"),
			PDFURLs:         filterPDFURLs(fieldStrings(hit.Fields, "pdf_urls")),
		}

		if s.secondary != nil && isEvidenceExchange(result.Domain, result.ResourceType) {
			if !secondaryFetched {
				secondaryHits = s.searchSecondary(ctx, req.SearchText)
				secondaryFetched = true
			}
			s.crossCheck(&result, secondaryHits, req.SearchText)
		}

		if result.Content == "" && result.URL == "" && len(result.PDFURLs) == 0 {
			continue
		}
		response.Results = append(response.Results, result)
	}

	return response, nil
}

// searchSecondary queries the secondary PDF index. Secondary failures are
// logged and treated as no corroboration, never as a failed search.
func (s *Service) searchSecondary(ctx context.Context, searchText string) []index.Hit {
	results, err := s.secondary.Search(ctx, index.Query{
		Text:   searchText,
		Fields: secondarySelectFields,
		Top:    secondaryTop,
	})
	if err != nil {
		s.logger.Error("secondary search failed", "index", s.secondary.Name(), "err", err)
		return nil
	}
	return results.Hits
}

// crossCheck marks a result as corroborated when any of its PDFs appears to
// contain the search text in the secondary index.
func (s *Service) crossCheck(result *Result, secondaryHits []index.Hit, searchText string) {
	term := strings.ToLower(searchText)

	for _, pdfURL := range result.PDFURLs {
		if pdfFilename(pdfURL) == "" {
			continue
		}

		for _, hit := range secondaryHits {
			snippet := SecondarySearchContext(fieldString(hit.Fields, "content"), searchText)
			if snippet == "" || !strings.Contains(strings.ToLower(snippet), term) {
				continue
			}
			result.FoundInPDF = true
			result.PDFContent = snippet
			return
		}
	}
}

func isEvidenceExchange(domain, resourceType string) bool {
	return strings.EqualFold(domain, evidenceExchange) ||
		strings.EqualFold(resourceType, evidenceExchange)
}

// filterPDFURLs drops the boilerplate policy PDFs.
func filterPDFURLs(pdfURLs []string) []string {
	var filtered []string
	for _, pdfURL := range pdfURLs {
		excluded := false
		for _, name := range excludedPDFs {
			if strings.Contains(pdfURL, name) {
				excluded = true
				break
			}
		}
		if !excluded {
			filtered = append(filtered, pdfURL)
		}
	}
	return filtered
}

// pdfFilename extracts the decoded, extension-less filename from a PDF URL.
func pdfFilename(pdfURL string) string {
	if pdfURL == "" {
		return ""
	}

	segments := strings.Split(pdfURL, "/")
	filename := segments[len(segments)-1]

	if decoded, err := url.QueryUnescape(filename); err == nil {
		filename = decoded
	}

	if dot := strings.LastIndex(filename, "."); dot > 0 {
		filename = filename[:dot]
	}
	return filename
}

// firstURL returns the first URL from a backend-typed field value, which
// may be a slice or a semicolon-separated string.
func firstURL(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []string:
		if len(v) == 0 {
			return ""
		}
		return v[0]
	case []any:
		if len(v) == 0 {
			return ""
		}
		if s, ok := v[0].(string); ok {
			return s
		}
		return ""
	case string:
		urls := strings.Split(v, ";")
		return urls[0]
	default:
		return ""
	}
}

// fieldString reads a string field from a hit.
func fieldString(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return s
	}
	return ""
}

// fieldStrings reads a string-slice field from a hit. Single strings and
// []any slices are normalized since backends differ in how they round-trip
// stored fields.
func fieldStrings(fields map[string]any, key string) []string {
	switch v := fields[key].(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
