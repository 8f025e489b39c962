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

import "fmt"

// ValidateIndexDocument validates an IndexDocument according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Content must not be empty
//   - Sourcefile must not be empty
//   - Embedding must not be empty
//
// NOT validated:
//   - Category and URLs (optional provenance fields)
//   - Title (may legitimately be empty for unnamed uploads)
func ValidateIndexDocument(doc *IndexDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidIndexDocument)
	}

	if doc.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidIndexDocument, ErrEmptyID)
	}

	if doc.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidIndexDocument, ErrEmptyContent)
	}

	if doc.Sourcefile == "" {
		return fmt.Errorf("%w: %w", ErrInvalidIndexDocument, ErrEmptySourcefile)
	}

	if len(doc.Embedding) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidIndexDocument, ErrEmptyEmbedding)
	}

	return nil
}

// ValidateBlobInfo validates a BlobInfo according to domain rules.
func ValidateBlobInfo(info *BlobInfo) error {
	if info == nil {
		return fmt.Errorf("%w: info is nil", ErrInvalidBlobInfo)
	}

	if info.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidBlobInfo, ErrEmptyBlobName)
	}

	if info.Container == "" {
		return fmt.Errorf("%w: %w", ErrInvalidBlobInfo, ErrEmptyContainer)
	}

	return nil
}
