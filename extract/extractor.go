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


package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/documentloaders"
	"golang.org/x/text/encoding/charmap"

	"github.com/poiesic/evidex/core"
)

// Extractor converts raw document bytes into plain text.
// The zero value is not usable; create instances with NewExtractor.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewExtractor creates a new content extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		logger: slog.Default().With("component", "extractor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the plain text content of a document. PDF documents
// (declared media type or .pdf name suffix) are decoded page by page and the
// page texts joined with a blank line. Everything else is decoded as UTF-8
// text, falling back to Latin-1 when the bytes are not valid UTF-8.
//
// Empty input yields empty text without error; callers treat that as
// "nothing to index".
func (e *Extractor) Extract(ctx context.Context, content []byte, contentType, name string) (string, error) {
	if len(content) == 0 {
		return "", nil
	}

	if core.IsPDF(contentType, name) {
		return e.extractPDF(ctx, content, name)
	}

	return e.extractText(content), nil
}

// extractPDF decodes a paginated PDF and concatenates the page texts in
// page order, separated by a blank line.
func (e *Extractor) extractPDF(ctx context.Context, content []byte, name string) (string, error) {
	loader := documentloaders.NewPDF(bytes.NewReader(content), int64(len(content)))

	pages, err := loader.Load(ctx)
	if err != nil {
		e.logger.Error("error extracting pdf text", "name", name, "err", err)
		return "", fmt.Errorf("%w: %s: %v", ErrPDFParse, name, err)
	}

	var sb strings.Builder
	for i, page := range pages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(page.PageContent)
	}

	e.logger.Debug("extracted pdf text", "name", name, "pages", len(pages))
	return strings.TrimSpace(sb.String()), nil
}

// extractText decodes bytes as UTF-8, falling back to Latin-1. The fallback
// never fails since every byte value is a valid Latin-1 character.
func (e *Extractor) extractText(content []byte) string {
	if utf8.Valid(content) {
		return strings.TrimSpace(string(content))
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		// Unreachable: ISO 8859-1 accepts all byte values.
		return strings.TrimSpace(string(content))
	}
	return strings.TrimSpace(string(decoded))
}
