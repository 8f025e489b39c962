package bleve

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/poiesic/evidex/index"
)

// Search executes a query against the local index. Facet filters become a
// conjunction of per-field disjunctions, matching the AND-of-ORs semantics
// of the remote filter grammar.
func (b *Index) Search(ctx context.Context, q index.Query) (*index.Results, error) {
	top := q.Top
	if top < 1 {
		top = 10
	}

	req := bleve.NewSearchRequestOptions(buildQuery(q), top, 0, false)
	if len(q.Fields) > 0 {
		req.Fields = q.Fields
	} else {
		req.Fields = []string{"*"}
	}

	res, err := b.idx.SearchInContext(ctx, req)
	if err != nil {
		b.logger.Error("search failed", "text", q.Text, "err", err)
		return nil, fmt.Errorf("%w: %v", index.ErrSearch, err)
	}

	results := &index.Results{
		Hits:  make([]index.Hit, 0, len(res.Hits)),
		Total: res.Total,
	}
	for _, hit := range res.Hits {
		results.Hits = append(results.Hits, index.Hit{
			ID:     hit.ID,
			Score:  hit.Score,
			Fields: hit.Fields,
		})
	}

	b.logger.Debug("search completed", "text", q.Text, "hits", len(results.Hits), "total", results.Total)
	return results, nil
}

func buildQuery(q index.Query) query.Query {
	var text query.Query
	if q.Text == "" || q.Text == "*" {
		text = bleve.NewMatchAllQuery()
	} else {
		match := bleve.NewMatchQuery(q.Text)
		match.SetField("content")
		text = match
	}

	if len(q.Filters) == 0 {
		return text
	}

	parts := []query.Query{text}
	for _, filter := range q.Filters {
		terms := make([]query.Query, 0, len(filter.Values))
		for _, value := range filter.Values {
			term := bleve.NewTermQuery(value)
			term.SetField(filter.Field)
			terms = append(terms, term)
		}
		if len(terms) == 0 {
			continue
		}
		parts = append(parts, bleve.NewDisjunctionQuery(terms...))
	}

	return bleve.NewConjunctionQuery(parts...)
}
