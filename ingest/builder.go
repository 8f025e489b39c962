package ingest

import (
	"path"

	"github.com/poiesic/evidex/core"
)

// buildIndexDocuments assembles one IndexDocument per (section, vector)
// pair, in section order. Document ids derive from the document name and
// the section's batch position, so re-ingesting the same document produces
// the same ids and overwrites rather than duplicates.
func buildIndexDocuments(account, container, name string, sections []core.Section, vectors [][]float32) []core.IndexDocument {
	title := path.Base(name)
	storageURL := core.StorageURL(account, container, name)

	docs := make([]core.IndexDocument, len(sections))
	for i, section := range sections {
		docs[i] = core.IndexDocument{
			ID:         core.DocumentID(name, i),
			Content:    section.Text,
			Embedding:  vectors[i],
			Title:      title,
			Sourcefile: name,
			Sourcepage: core.SourcepageFromFilePage(name, section.SequenceNumber),
			URLs:       []string{},
			StorageURL: storageURL,
		}
	}
	return docs
}
