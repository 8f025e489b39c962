// Package ingest provides pipeline orchestration for publishing documents
// into a search index.
//
// The Pipeline type drives a single document through the ingestion stages:
//   - Extracting plain text from the raw bytes
//   - Chunking the text into token-bounded sections
//   - Generating one embedding per section, with retry
//   - Assembling and bulk-uploading index documents
//
// Stages run strictly in sequence; each consumes the complete output of the
// previous one. Embedding calls may optionally fan out over a worker pool,
// with results reassembled in section order before assembly. Empty content,
// empty extracted text, and zero sections are successful no-ops.
//
// The Trigger type adapts storage-creation events to pipeline runs.
package ingest
