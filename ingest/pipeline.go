package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/evidex/ai"
	"github.com/poiesic/evidex/chunk"
	"github.com/poiesic/evidex/core"
	"github.com/poiesic/evidex/extract"
	"github.com/poiesic/evidex/index"
)

// DefaultContainer is the container ingested documents are assumed to live
// in when none is configured.
const DefaultContainer = "evidencefiles"

// Config holds the provenance settings baked into assembled index documents.
type Config struct {
	// StorageAccount is the storage account name used to build each
	// document's storage URL. Required.
	StorageAccount string

	// Container is the container the source blobs live in.
	// Defaults to DefaultContainer.
	Container string
}

// Pipeline orchestrates the ingestion of one document: extraction, chunking,
// embedding, assembly, and bulk upload to the index. Stages run strictly in
// sequence. A Pipeline holds no per-run state and is safe for concurrent
// runs; concurrent runs for the same document name are last-writer-wins in
// the index.
type Pipeline struct {
	index     index.Client
	embedder  ai.Embedder
	extractor *extract.Extractor
	splitter  *chunk.Splitter
	account   string
	container string
	retry     RetryPolicy
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithSplitter sets a custom section splitter.
// Default is chunk.NewSplitter().
func WithSplitter(splitter *chunk.Splitter) Option {
	return func(p *Pipeline) error {
		if splitter != nil {
			p.splitter = splitter
		}
		return nil
	}
}

// WithRetryPolicy sets the retry policy for embedding calls.
// Default is DefaultRetryPolicy().
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(p *Pipeline) error {
		if policy.MaxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.retry = policy
		return nil
	}
}

// WithConcurrency fans embedding calls out over a worker pool of the given
// size. Results are reassembled in section order before assembly, so the
// uploaded batch is identical to a sequential run's. Default is sequential
// embedding, one call at a time in section order.
func WithConcurrency(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(indexClient index.Client, embedder ai.Embedder, cfg Config, opts ...Option) (*Pipeline, error) {
	if indexClient == nil {
		return nil, ErrIndexClientRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if cfg.StorageAccount == "" {
		return nil, ErrStorageAccountRequired
	}
	if cfg.Container == "" {
		cfg.Container = DefaultContainer
	}

	p := &Pipeline{
		index:     indexClient,
		embedder:  embedder,
		extractor: extract.NewExtractor(),
		splitter:  chunk.NewSplitter(),
		account:   cfg.StorageAccount,
		container: cfg.Container,
		retry:     DefaultRetryPolicy(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Container returns the container ingested documents are read from.
func (p *Pipeline) Container() string {
	return p.container
}

// Run ingests one document and returns the number of index documents
// uploaded. Empty content, empty extracted text, and zero sections are
// successful no-ops returning zero. Any stage error aborts the run; nothing
// is uploaded unless every section embedded successfully.
func (p *Pipeline) Run(ctx context.Context, content []byte, contentType, name string) (int, error) {
	if len(content) == 0 {
		p.logger.Info("skipping empty document", "name", name)
		return 0, nil
	}

	text, err := p.extractor.Extract(ctx, content, contentType, name)
	if err != nil {
		p.logger.Error("error extracting text", "name", name, "err", err)
		return 0, err
	}
	if text == "" {
		p.logger.Info("skipping document with no extractable text", "name", name)
		return 0, nil
	}

	sections := p.splitter.Split(text)
	if len(sections) == 0 {
		p.logger.Info("skipping document with no sections", "name", name)
		return 0, nil
	}
	p.logger.Info("created sections", "name", name, "sections", len(sections))

	vectors, err := p.embedSections(ctx, sections)
	if err != nil {
		p.logger.Error("error creating embeddings", "name", name, "err", err)
		return 0, err
	}
	if len(vectors) != len(sections) {
		return 0, fmt.Errorf("%w: %d vectors for %d sections", ErrEmbeddingCountMismatch, len(vectors), len(sections))
	}

	docs := buildIndexDocuments(p.account, p.container, name, sections, vectors)

	results, err := p.index.UploadDocuments(ctx, docs)
	if err != nil {
		p.logger.Error("error uploading to index", "name", name, "index", p.index.Name(), "err", err)
		return 0, err
	}

	uploaded := 0
	for _, result := range results {
		if result.Succeeded {
			uploaded++
			continue
		}
		p.logger.Warn("document rejected by index", "id", result.ID, "message", result.Message)
	}

	p.logger.Info("uploaded documents", "name", name, "index", p.index.Name(), "count", uploaded)
	return uploaded, nil
}

// embedSections produces one vector per section, in section order. Each
// remote call is wrapped in the pipeline's retry policy; a section that
// exhausts its retries aborts the whole batch.
func (p *Pipeline) embedSections(ctx context.Context, sections []core.Section) ([][]float32, error) {
	vectors := make([][]float32, len(sections))

	if p.pool == nil {
		for i, section := range sections {
			vector, err := p.embedSection(ctx, section)
			if err != nil {
				return nil, err
			}
			vectors[i] = vector
		}
		return vectors, nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, section := range sections {
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			vector, embedErr := p.embedSection(ctx, section)

			mu.Lock()
			defer mu.Unlock()
			if embedErr != nil {
				if firstErr == nil {
					firstErr = embedErr
				}
				return
			}
			vectors[i] = vector
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return vectors, nil
}

func (p *Pipeline) embedSection(ctx context.Context, section core.Section) ([]float32, error) {
	var vector []float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		vector, embedErr = p.embedder.EmbedText(ctx, section.Text)
		return embedErr
	}, p.retry)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: section %d: %v", ErrEmbedding, section.SequenceNumber, err)
	}
	return vector, nil
}

// Release releases the worker pool, if any.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
