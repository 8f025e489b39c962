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
	"regexp"
	"strings"
)

const (
	// primaryContextChars is the window on each side of the match in
	// primary result snippets.
	primaryContextChars = 150

	// secondaryContextChars is the window on each side of the match in
	// secondary (PDF) result snippets.
	secondaryContextChars = 300

	// secondaryHeadChars is the fallback prefix length when a secondary
	// result contains no search term at all.
	secondaryHeadChars = 500
)

var htmlTag = regexp.MustCompile(`<[^>]+>`)

// cleanContent strips HTML tags and collapses whitespace runs.
func cleanContent(text string) string {
	clean := htmlTag.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(clean), " ")
}

// SearchContext returns a snippet of text around the first occurrence of
// the search term, with ellipsis markers when the window does not reach the
// start or end of the cleaned text. Matching is case insensitive; when the
// full term is absent, individual words longer than three characters are
// tried in order. Returns "" when nothing matches.
func SearchContext(text, searchText string) string {
	if text == "" || searchText == "" {
		return ""
	}

	clean := cleanContent(text)
	lower := strings.ToLower(clean)
	term := strings.ToLower(searchText)

	position := strings.Index(lower, term)
	if position == -1 {
		for _, word := range strings.Fields(term) {
			if len(word) <= 3 {
				continue
			}
			if position = strings.Index(lower, word); position != -1 {
				break
			}
		}
	}
	if position == -1 {
		return ""
	}

	start := position - primaryContextChars
	if start < 0 {
		start = 0
	}
	end := position + len(searchText) + primaryContextChars
	if end > len(clean) {
		end = len(clean)
	}

	snippet := strings.TrimSpace(clean[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(clean) {
		snippet = snippet + "..."
	}
	return snippet
}

// SecondarySearchContext is the snippet variant for secondary PDF results:
// a wider window around the first matching search word, falling back to the
// head of the document when no word matches.
func SecondarySearchContext(text, searchText string) string {
	if text == "" || searchText == "" {
		return ""
	}

	clean := cleanContent(text)
	lower := strings.ToLower(clean)

	position := -1
	for _, term := range strings.Fields(strings.ToLower(searchText)) {
		if position = strings.Index(lower, term); position != -1 {
			break
		}
	}
	if position == -1 {
		if len(clean) <= secondaryHeadChars {
			return clean + "..."
		}
		return clean[:secondaryHeadChars] + "..."
	}

	start := position - secondaryContextChars
	if start < 0 {
		start = 0
	}
	end := position + secondaryContextChars
	if end > len(clean) {
		end = len(clean)
	}

	snippet := strings.TrimSpace(clean[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(clean) {
		snippet = snippet + "..."
	}
	return snippet
}
