package chunk

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/poiesic/evidex/core"
)

// DefaultMaxTokens is the conservative per-section token budget.
const DefaultMaxTokens = 2000

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	sentenceEnd   = regexp.MustCompile(`([.!?])\s+`)
)

// Splitter splits normalized text into token-bounded sections while
// preserving sentence boundaries where possible.
type Splitter struct {
	maxTokens int
	logger    *slog.Logger
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithMaxTokens sets the per-section token budget.
// Values below 1 fall back to DefaultMaxTokens.
func WithMaxTokens(maxTokens int) Option {
	return func(s *Splitter) {
		if maxTokens < 1 {
			maxTokens = DefaultMaxTokens
		}
		s.maxTokens = maxTokens
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Splitter) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewSplitter creates a splitter with the default token budget.
func NewSplitter(opts ...Option) *Splitter {
	s := &Splitter{
		maxTokens: DefaultMaxTokens,
		logger:    slog.Default().With("component", "splitter"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxTokens returns the configured per-section token budget.
func (s *Splitter) MaxTokens() int {
	return s.maxTokens
}

// Split chunks text into sections in reading order. Sentences are
// accumulated greedily until the next one would push the section past the
// token budget, at which point the section is closed and a new one starts.
// A single sentence longer than the budget is never split further and may
// exceed it. Sequence numbers start at 0 and increase by 1 per section.
//
// Token cost is the whitespace-delimited word count, not a subword
// tokenizer count.
func (s *Splitter) Split(text string) []core.Section {
	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	if text == "" {
		return nil
	}

	sentences := splitSentences(text)

	var sections []core.Section
	var current []string
	currentLength := 0
	sectionNumber := 0

	for _, sentence := range sentences {
		sentenceLength := len(strings.Fields(sentence))

		if currentLength+sentenceLength > s.maxTokens && len(current) > 0 {
			sections = append(sections, core.Section{
				Text:           strings.Join(current, " "),
				SequenceNumber: sectionNumber,
			})
			s.logger.Debug("closed section", "section", sectionNumber, "tokens", currentLength)
			sectionNumber++
			current = nil
			currentLength = 0
		}

		current = append(current, sentence)
		currentLength += sentenceLength
	}

	if len(current) > 0 {
		sections = append(sections, core.Section{
			Text:           strings.Join(current, " "),
			SequenceNumber: sectionNumber,
		})
		s.logger.Debug("closed final section", "section", sectionNumber, "tokens", currentLength)
	}

	s.logger.Debug("split text", "sections", len(sections))
	return sections
}

// splitSentences cuts text after sentence-ending punctuation followed by
// whitespace. This is a heuristic, not a grammar-aware segmentation.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringSubmatchIndex(text, -1) {
		// loc[3] is the end of the punctuation group; the trailing
		// whitespace is consumed by the match and dropped.
		sentences = append(sentences, text[start:loc[3]])
		start = loc[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}
