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


package evidex

import (
	"log/slog"
	"path/filepath"

	"github.com/poiesic/evidex/ai"
	"github.com/poiesic/evidex/ai/openai"
	"github.com/poiesic/evidex/config"
	"github.com/poiesic/evidex/index"
	"github.com/poiesic/evidex/index/bleve"
	"github.com/poiesic/evidex/ingest"
	"github.com/poiesic/evidex/query"
	"github.com/poiesic/evidex/server"
	"github.com/poiesic/evidex/storage"
	"github.com/poiesic/evidex/storage/badger"
)

// App wires the blob store, the search indexes, the embedder, and the
// ingestion pipeline into one unit with a single Close.
type App struct {
	backend   *badger.Backend
	blobs     storage.BlobRepository
	primary   index.Client
	secondary index.Client
	pipeline  *ingest.Pipeline
	trigger   *ingest.Trigger
	search    *query.Service
	cfg       *config.Config
	logger    *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	embedder     ai.Embedder
	pipelineOpts []ingest.Option
}

// WithEmbedder overrides the embedder built from the configuration.
func WithEmbedder(embedder ai.Embedder) AppOption {
	return func(o *appOptions) {
		o.embedder = embedder
	}
}

// WithPipelineOptions passes extra options to the ingestion pipeline.
func WithPipelineOptions(opts ...ingest.Option) AppOption {
	return func(o *appOptions) {
		o.pipelineOpts = append(o.pipelineOpts, opts...)
	}
}

// NewApp builds the application from its configuration.
func NewApp(cfg *config.Config, opts ...AppOption) (*App, error) {
	options := &appOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(cfg.Storage.Path, false)
	if err != nil {
		return nil, err
	}

	blobs, err := badger.NewBlobRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Each index needs its own directory; two bleve indexes cannot share
	// one, the second open would block on the directory lock.
	primary, err := bleve.Open(filepath.Join(cfg.Index.Path, cfg.Index.Primary), cfg.Index.Primary)
	if err != nil {
		blobs.Close()
		backend.Close()
		return nil, err
	}

	secondary, err := bleve.Open(filepath.Join(cfg.Index.Path, cfg.Index.Secondary), cfg.Index.Secondary)
	if err != nil {
		primary.Close()
		blobs.Close()
		backend.Close()
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(ai.NewConfig(
			ai.WithHost(cfg.Embedding.Host),
			ai.WithAPIKey(cfg.Embedding.APIKey),
			ai.WithModel(cfg.Embedding.Model),
		))
		if err != nil {
			secondary.Close()
			primary.Close()
			blobs.Close()
			backend.Close()
			return nil, err
		}
	}

	pipeline, err := ingest.NewPipeline(primary, embedder, ingest.Config{
		StorageAccount: cfg.Storage.Account,
		Container:      cfg.Storage.Container,
	}, options.pipelineOpts...)
	if err != nil {
		secondary.Close()
		primary.Close()
		blobs.Close()
		backend.Close()
		return nil, err
	}

	trigger, err := ingest.NewTrigger(blobs, pipeline)
	if err != nil {
		pipeline.Release()
		secondary.Close()
		primary.Close()
		blobs.Close()
		backend.Close()
		return nil, err
	}

	searchSvc, err := query.NewService(primary, query.WithSecondary(secondary))
	if err != nil {
		pipeline.Release()
		secondary.Close()
		primary.Close()
		blobs.Close()
		backend.Close()
		return nil, err
	}

	return &App{
		backend:   backend,
		blobs:     blobs,
		primary:   primary,
		secondary: secondary,
		pipeline:  pipeline,
		trigger:   trigger,
		search:    searchSvc,
		cfg:       cfg,
		logger:    slog.Default(),
	}, nil
}

// BlobRepository returns the blob store.
func (a *App) BlobRepository() storage.BlobRepository {
	return a.blobs
}

// Pipeline returns the ingestion pipeline.
func (a *App) Pipeline() *ingest.Pipeline {
	return a.pipeline
}

// Trigger returns the ingestion trigger.
func (a *App) Trigger() *ingest.Trigger {
	return a.trigger
}

// SearchService returns the search service.
func (a *App) SearchService() *query.Service {
	return a.search
}

// NewServer builds the HTTP server over the app's collaborators.
func (a *App) NewServer(opts ...server.Option) (*server.Server, error) {
	opts = append([]server.Option{
		server.WithTrigger(a.trigger),
		server.WithAccount(a.cfg.Storage.Account),
		server.WithContainers(a.cfg.Storage.Container, a.cfg.Storage.HTMLContainer),
	}, opts...)
	return server.New(a.blobs, a.search, opts...)
}

// Close releases the pipeline and closes the indexes and the blob store.
func (a *App) Close() error {
	a.pipeline.Release()

	if err := a.secondary.Close(); err != nil {
		a.logger.Error("error closing secondary index", "err", err)
	}
	if err := a.primary.Close(); err != nil {
		a.logger.Error("error closing primary index", "err", err)
		return err
	}
	if err := a.blobs.Close(); err != nil {
		a.logger.Error("error closing blob repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
