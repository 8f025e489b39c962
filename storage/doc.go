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


// Package storage provides the blob storage abstraction layer for evidex.
//
// This package defines the repository interface that decouples blob storage
// from the upload endpoints and the ingestion trigger. The badger subpackage
// provides a BadgerDB-backed implementation; an object-store-backed one can
// replace it without touching consumers.
//
// # Constructor Return Type Pattern
//
// Public constructors return interfaces to enforce abstraction:
//
//	blobs, err := badger.NewBlobRepository(backend)  // returns storage.BlobRepository
//
// Internal package constructors may return concrete types since they're only
// used within the implementation package.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support.
package storage
