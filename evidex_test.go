package evidex

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/evidex/ai/mock"
	"github.com/poiesic/evidex/config"
	"github.com/poiesic/evidex/query"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Listen: config.ListenConfig{Addr: ":0"},
		Storage: config.StorageConfig{
			Path:          filepath.Join(dir, "blobs"),
			Account:       "acct",
			Container:     config.DefaultContainer,
			HTMLContainer: config.DefaultHTMLContainer,
		},
		Embedding: config.EmbeddingConfig{
			Host:   "http://localhost:11434",
			APIKey: "none",
			Model:  "embeddinggemma",
		},
		Index: config.IndexConfig{
			Path:      filepath.Join(dir, "indexes"),
			Primary:   config.DefaultPrimaryIndex,
			Secondary: config.DefaultSecondaryIndex,
		},
	}
}

// NewApp opens the primary and the secondary index under the same base
// path; both opens must succeed and address distinct indexes.
func TestNewApp_OpensBothIndexes(t *testing.T) {
	app, err := NewApp(testConfig(t), WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	require.NotNil(t, app.BlobRepository())
	require.NotNil(t, app.Trigger())

	ctx := context.Background()
	count, err := app.Pipeline().Run(ctx, []byte("The quick brown fox jumps over the lazy dog."), "text/plain", "fox.txt")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	resp, err := app.SearchService().Search(ctx, &query.Request{SearchText: "quick"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "fox.txt", resp.Results[0].Title)
}

func TestNewApp_ReopensExistingIndexes(t *testing.T) {
	cfg := testConfig(t)

	app, err := NewApp(cfg, WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	require.NoError(t, app.Close())

	// A second start against the same directories must open, not recreate.
	app, err = NewApp(cfg, WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	require.NoError(t, app.Close())
}
