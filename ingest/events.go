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


package ingest

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/evidex/storage"
)

// EventTypeBlobCreated is the event type emitted when a blob is created.
const EventTypeBlobCreated = "Microsoft.Storage.BlobCreated"

// BlobCreatedEvent is a storage-creation notification. Events whose Type is
// not EventTypeBlobCreated, whose URL is empty, or whose declared length is
// zero are ignored.
type BlobCreatedEvent struct {
	Type          string `json:"eventType"`
	URL           string `json:"url"`
	ContentLength int64  `json:"contentLength"`
	ContentType   string `json:"contentType"`
}

// Trigger turns storage-creation events into pipeline runs. It resolves the
// event's blob URL against a blob repository and feeds the blob's bytes,
// content type, and name into the pipeline.
type Trigger struct {
	blobs    storage.BlobRepository
	pipeline *Pipeline
	logger   *slog.Logger
}

// TriggerOption configures a Trigger.
type TriggerOption func(*Trigger)

// WithTriggerLogger sets a custom logger.
// Default is slog.Default().
func WithTriggerLogger(logger *slog.Logger) TriggerOption {
	return func(t *Trigger) {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
	}
}

// NewTrigger creates an event trigger bound to a blob repository and a
// pipeline. Blobs are read from the pipeline's configured container.
func NewTrigger(blobs storage.BlobRepository, pipeline *Pipeline, opts ...TriggerOption) (*Trigger, error) {
	if blobs == nil {
		return nil, ErrBlobRepositoryRequired
	}
	if pipeline == nil {
		return nil, ErrPipelineRequired
	}

	t := &Trigger{
		blobs:    blobs,
		pipeline: pipeline,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Handle processes one storage event and returns the number of index
// documents uploaded. Events that fail the gating checks, reference a
// missing blob, or carry an unresolvable URL are skipped without error; the
// host's redelivery would not help them. Pipeline errors propagate so the
// invocation can be marked failed and redelivered.
func (t *Trigger) Handle(ctx context.Context, event BlobCreatedEvent) (int, error) {
	if event.Type != EventTypeBlobCreated {
		t.logger.Info("skipping event type", "type", event.Type)
		return 0, nil
	}
	if event.URL == "" {
		t.logger.Warn("no blob URL in event data")
		return 0, nil
	}
	if event.ContentLength == 0 {
		t.logger.Warn("skipping empty blob", "url", event.URL)
		return 0, nil
	}

	container := t.pipeline.Container()
	_, name, err := storage.ResolveBlobURL(event.URL, container)
	if err != nil {
		t.logger.Error("error resolving blob url", "url", event.URL, "err", err)
		return 0, nil
	}

	content, info, err := t.blobs.GetBlob(ctx, container, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			t.logger.Warn("blob not found", "container", container, "name", name)
			return 0, nil
		}
		return 0, err
	}

	contentType := event.ContentType
	if contentType == "" {
		contentType = info.ContentType
	}

	t.logger.Info("processing blob", "name", name, "size", len(content), "type", contentType)
	return t.pipeline.Run(ctx, content, contentType, name)
}
