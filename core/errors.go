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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidIndexDocument indicates an IndexDocument failed validation.
	ErrInvalidIndexDocument = errors.New("invalid index document")

	// ErrEmptyID indicates the ID field is empty.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptySourcefile indicates the Sourcefile field is empty.
	ErrEmptySourcefile = errors.New("sourcefile cannot be empty")

	// ErrEmptyEmbedding indicates the Embedding field is empty.
	ErrEmptyEmbedding = errors.New("embedding cannot be empty")

	// ErrInvalidBlobInfo indicates a BlobInfo failed validation.
	ErrInvalidBlobInfo = errors.New("invalid blob info")

	// ErrEmptyBlobName indicates the blob Name field is empty.
	ErrEmptyBlobName = errors.New("blob name cannot be empty")

	// ErrEmptyContainer indicates the Container field is empty.
	ErrEmptyContainer = errors.New("container cannot be empty")
)
