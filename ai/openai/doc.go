// Package openai implements ai.Embedder against OpenAI-compatible
// embedding APIs.
package openai
