// Package ai defines the embedding service abstraction used by the
// ingestion pipeline and the search side.
//
// The Embedder interface decouples callers from the concrete embedding
// backend. The openai subpackage provides an OpenAI-compatible
// implementation; the mock subpackage provides deterministic test doubles.
package ai
