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


package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/evidex/ingest"
	"github.com/poiesic/evidex/query"
	"github.com/poiesic/evidex/storage"
)

const defaultDispatchWorkers = 4

// genericUploadError is the 500 body for upload failures. Internal error
// detail never reaches the client.
const genericUploadError = "An error occurred while uploading file. Please contact the administrator."

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	blobs         storage.BlobRepository
	search        *query.Service
	trigger       *ingest.Trigger
	account       string
	container     string
	htmlContainer string
	dispatch      *ants.Pool
	logger        *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithTrigger sets the ingestion trigger invoked asynchronously after each
// upload. Without one, uploads are stored but not indexed.
func WithTrigger(trigger *ingest.Trigger) Option {
	return func(s *Server) error {
		s.trigger = trigger
		return nil
	}
}

// WithAccount sets the storage account name used in synthesized blob URLs.
func WithAccount(account string) Option {
	return func(s *Server) error {
		if account != "" {
			s.account = account
		}
		return nil
	}
}

// WithContainers sets the default upload container and the HTML container.
func WithContainers(container, htmlContainer string) Option {
	return func(s *Server) error {
		if container != "" {
			s.container = container
		}
		if htmlContainer != "" {
			s.htmlContainer = htmlContainer
		}
		return nil
	}
}

// WithDispatchWorkers sets the worker pool size for async ingestion
// dispatch.
func WithDispatchWorkers(size int) Option {
	return func(s *Server) error {
		if size < 1 {
			size = 1
		}
		if s.dispatch != nil {
			s.dispatch.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.dispatch = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// New creates a Server over a blob repository and a search service.
func New(blobs storage.BlobRepository, search *query.Service, opts ...Option) (*Server, error) {
	if blobs == nil {
		return nil, ErrBlobRepositoryRequired
	}
	if search == nil {
		return nil, ErrSearchServiceRequired
	}

	pool, err := ants.NewPool(defaultDispatchWorkers)
	if err != nil {
		return nil, err
	}

	s := &Server{
		blobs:         blobs,
		search:        search,
		account:       "localhost",
		container:     ingest.DefaultContainer,
		htmlContainer: "htmlcontent",
		dispatch:      pool,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(s); optErr != nil {
			s.Release()
			return nil, optErr
		}
	}

	return s, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/upload", s.handleUpload)
	mux.HandleFunc("POST /api/upload-html", s.handleUploadHTML)
	mux.HandleFunc("POST /api/search", s.handleSearch)
	return mux
}

// Release releases the dispatch pool. Queued ingestion tasks may be
// dropped.
func (s *Server) Release() {
	if s.dispatch != nil {
		s.dispatch.Release()
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("error writing response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
