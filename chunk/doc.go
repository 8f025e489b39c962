// Package chunk splits plain text into ordered, token-bounded sections.
//
// The splitter works on sentence-like units found with punctuation
// heuristics, not a grammar-aware tokenizer, and approximates token cost
// by whitespace word count. Both approximations are deliberate: downstream
// index sizing depends on them.
package chunk
