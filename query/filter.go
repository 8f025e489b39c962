package query

import (
	"fmt"
	"strings"

	"github.com/poiesic/evidex/index"
)

// FilterExpression renders facet filters as an OData filter string for
// remote index services. Filters AND together; values within one filter OR
// together. Collection-valued fields render as any() lambdas:
//
//	(programs/any(p: p eq 'AmeriCorps') or programs/any(p: p eq 'VISTA')) and domain eq 'education'
//
// Returns "" when no filters are given. Local backends ignore this and
// consume index.FacetFilter directly.
func FilterExpression(filters []index.FacetFilter) string {
	var parts []string

	for _, filter := range filters {
		if len(filter.Values) == 0 {
			continue
		}

		if filter.Collection {
			clauses := make([]string, len(filter.Values))
			for i, value := range filter.Values {
				clauses[i] = fmt.Sprintf("%s/any(%c: %c eq '%s')", filter.Field, filter.Field[0], filter.Field[0], value)
			}
			parts = append(parts, "("+strings.Join(clauses, " or ")+")")
			continue
		}

		if len(filter.Values) == 1 {
			parts = append(parts, fmt.Sprintf("%s eq '%s'", filter.Field, filter.Values[0]))
			continue
		}

		clauses := make([]string, len(filter.Values))
		for i, value := range filter.Values {
			clauses[i] = fmt.Sprintf("%s eq '%s'", filter.Field, value)
		}
		parts = append(parts, "("+strings.Join(clauses, " or ")+")")
	}

	return strings.Join(parts, " and ")
}
