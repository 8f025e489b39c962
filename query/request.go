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
	"encoding/json"

	"github.com/poiesic/evidex/index"
)

// StringList accepts either a JSON string or a JSON array of strings.
// Clients send both shapes for the same field.
type StringList []string

// UnmarshalJSON decodes a bare string as a one-element list.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = StringList(list)
	return nil
}

// Request is the body of a search call. An empty SearchText requests a
// count-only query over the given filters.
type Request struct {
	SearchText      string     `json:"search_text"`
	Programs        StringList `json:"programs,omitempty"`
	AgesStudied     StringList `json:"ages_studied,omitempty"`
	FocusPopulation string     `json:"focus_population,omitempty"`
	Domain          string     `json:"domain,omitempty"`
	Subdomain1      string     `json:"subdomain_1,omitempty"`
	Subdomain2      string     `json:"subdomain_2,omitempty"`
	Subdomain3      string     `json:"subdomain_3,omitempty"`
}

// HasFilters reports whether any facet filter is present.
func (r *Request) HasFilters() bool {
	return len(r.Programs) > 0 ||
		len(r.AgesStudied) > 0 ||
		r.FocusPopulation != "" ||
		r.Domain != "" ||
		r.Subdomain1 != "" ||
		r.Subdomain2 != "" ||
		r.Subdomain3 != ""
}

// Filters renders the request's facets as index filters, in a fixed order.
// Collection-valued facets (programs, ages studied, focus population) are
// marked as such for remote expression rendering.
func (r *Request) Filters() []index.FacetFilter {
	var filters []index.FacetFilter

	if len(r.Programs) > 0 {
		filters = append(filters, index.FacetFilter{Field: "programs", Values: r.Programs, Collection: true})
	}
	if len(r.AgesStudied) > 0 {
		filters = append(filters, index.FacetFilter{Field: "ages_studied", Values: r.AgesStudied, Collection: true})
	}
	if r.FocusPopulation != "" {
		filters = append(filters, index.FacetFilter{Field: "focus_population", Values: []string{r.FocusPopulation}, Collection: true})
	}
	if r.Domain != "" {
		filters = append(filters, index.FacetFilter{Field: "domain", Values: []string{r.Domain}})
	}
	if r.Subdomain1 != "" {
		filters = append(filters, index.FacetFilter{Field: "subdomain_1", Values: []string{r.Subdomain1}})
	}
	if r.Subdomain2 != "" {
		filters = append(filters, index.FacetFilter{Field: "subdomain_2", Values: []string{r.Subdomain2}})
	}
	if r.Subdomain3 != "" {
		filters = append(filters, index.FacetFilter{Field: "subdomain_3", Values: []string{r.Subdomain3}})
	}

	return filters
}

// AppliedFilters echoes the request's facet values back in the response.
type AppliedFilters struct {
	Programs        StringList `json:"programs"`
	AgesStudied     StringList `json:"ages_studied"`
	FocusPopulation string     `json:"focus_population"`
	Domain          string     `json:"domain"`
	Subdomain1      string     `json:"subdomain_1"`
	Subdomain2      string     `json:"subdomain_2"`
	Subdomain3      string     `json:"subdomain_3"`
}

// Applied returns the filter echo for a response.
func (r *Request) Applied() AppliedFilters {
	return AppliedFilters{
		Programs:        r.Programs,
		AgesStudied:     r.AgesStudied,
		FocusPopulation: r.FocusPopulation,
		Domain:          r.Domain,
		Subdomain1:      r.Subdomain1,
		Subdomain2:      r.Subdomain2,
		Subdomain3:      r.Subdomain3,
	}
}
