package chunk

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_Empty(t *testing.T) {
	s := NewSplitter()

	assert.Empty(t, s.Split(""))
	assert.Empty(t, s.Split("   \n\t  "))
}

func TestSplit_SingleSection(t *testing.T) {
	s := NewSplitter()

	sections := s.Split("First sentence. Second sentence! Third sentence?")
	require.Len(t, sections, 1)
	assert.Equal(t, 0, sections[0].SequenceNumber)
	assert.Equal(t, "First sentence. Second sentence! Third sentence?", sections[0].Text)
}

func TestSplit_NormalizesWhitespace(t *testing.T) {
	s := NewSplitter()

	sections := s.Split("  First   sentence.\n\nSecond\tsentence.  ")
	require.Len(t, sections, 1)
	assert.Equal(t, "First sentence. Second sentence.", sections[0].Text)
}

func TestSplit_RespectsTokenBudget(t *testing.T) {
	s := NewSplitter(WithMaxTokens(10))

	// Each sentence is 6 words, so only one fits per section.
	text := "one two three four five six. seven eight nine ten eleven twelve. alpha beta gamma delta epsilon zeta."
	sections := s.Split(text)
	require.Len(t, sections, 3)

	for i, section := range sections {
		assert.Equal(t, i, section.SequenceNumber)
		assert.LessOrEqual(t, len(strings.Fields(section.Text)), 10)
		assert.NotEmpty(t, section.Text)
	}
}

func TestSplit_SequenceNumbersContiguous(t *testing.T) {
	s := NewSplitter(WithMaxTokens(5))

	var sb strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&sb, "word%d wordy sentence here. ", i)
	}

	sections := s.Split(sb.String())
	require.NotEmpty(t, sections)
	for i, section := range sections {
		assert.Equal(t, i, section.SequenceNumber, "sequence numbers must be 0..k-1 with no gaps")
	}
}

func TestSplit_Reconstruction(t *testing.T) {
	s := NewSplitter(WithMaxTokens(8))

	text := "The quick brown fox jumps. Over the lazy dog today! Was it worth the effort? Nobody can really say."
	sections := s.Split(text)
	require.Greater(t, len(sections), 1)

	parts := make([]string, len(sections))
	for i, section := range sections {
		parts[i] = section.Text
	}
	assert.Equal(t, text, strings.Join(parts, " "),
		"joining sections must reconstruct the normalized input")
}

func TestSplit_OversizedSentenceNotSplit(t *testing.T) {
	s := NewSplitter(WithMaxTokens(5))

	// A single 12-word sentence exceeds the budget but stays intact.
	long := "one two three four five six seven eight nine ten eleven twelve."
	sections := s.Split("Short lead. " + long)
	require.Len(t, sections, 2)
	assert.Equal(t, "Short lead.", sections[0].Text)
	assert.Equal(t, long, sections[1].Text)
	assert.Greater(t, len(strings.Fields(sections[1].Text)), 5)
}

func TestSplit_NoPunctuation(t *testing.T) {
	s := NewSplitter()

	sections := s.Split("a stream of words with no terminator at all")
	require.Len(t, sections, 1)
	assert.Equal(t, "a stream of words with no terminator at all", sections[0].Text)
}

func TestSplit_NoEmptySections(t *testing.T) {
	s := NewSplitter(WithMaxTokens(3))

	sections := s.Split("One. Two. Three. Four. Five. Six. Seven. Eight.")
	require.NotEmpty(t, sections)
	for _, section := range sections {
		assert.NotEmpty(t, strings.TrimSpace(section.Text))
	}
}
