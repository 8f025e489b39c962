package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchContext_EmptyInputs(t *testing.T) {
	assert.Empty(t, SearchContext("", "youth"))
	assert.Empty(t, SearchContext("some text", ""))
}

func TestSearchContext_NoMatch(t *testing.T) {
	assert.Empty(t, SearchContext("completely unrelated text", "zebra"))
}

func TestSearchContext_ShortTextNoEllipsis(t *testing.T) {
	text := "The program serves youth in rural areas."
	snippet := SearchContext(text, "youth")
	assert.Equal(t, text, snippet)
}

func TestSearchContext_CaseInsensitive(t *testing.T) {
	snippet := SearchContext("Mentoring YOUTH programs.", "youth")
	assert.Contains(t, snippet, "YOUTH")
}

func TestSearchContext_StripsHTML(t *testing.T) {
	snippet := SearchContext("<p>The <b>youth</b> program</p>", "youth")
	assert.Equal(t, "The youth program", snippet)
	assert.NotContains(t, snippet, "<")
}

func TestSearchContext_EllipsisOnTruncation(t *testing.T) {
	long := strings.Repeat("filler words here ", 50) + "youth " + strings.Repeat("more filler text ", 50)
	snippet := SearchContext(long, "youth")
	assert.True(t, strings.HasPrefix(snippet, "..."))
	assert.True(t, strings.HasSuffix(snippet, "..."))
	assert.Contains(t, snippet, "youth")
}

func TestSearchContext_FallsBackToLongWords(t *testing.T) {
	// Full phrase absent; "mentoring" (>3 chars) should match, "to" should
	// not be tried.
	text := "Community mentoring initiatives for students."
	snippet := SearchContext(text, "access to mentoring")
	assert.Contains(t, snippet, "mentoring")
}

func TestSearchContext_ShortWordsNotTried(t *testing.T) {
	// Neither word exceeds three characters, so the word fallback is
	// skipped entirely.
	assert.Empty(t, SearchContext("the cat sat on the mat", "big dog"))
}

func TestSecondarySearchContext_HeadFallback(t *testing.T) {
	long := strings.Repeat("unrelated filler content ", 40)
	snippet := SecondarySearchContext(long, "zebra")
	assert.True(t, strings.HasSuffix(snippet, "..."))
	assert.LessOrEqual(t, len(snippet), 503)
}

func TestSecondarySearchContext_Match(t *testing.T) {
	long := strings.Repeat("filler ", 100) + "youth" + strings.Repeat(" trailing", 100)
	snippet := SecondarySearchContext(long, "youth mentoring")
	assert.Contains(t, snippet, "youth")
	assert.True(t, strings.HasPrefix(snippet, "..."))
}

func TestSecondarySearchContext_EmptyInputs(t *testing.T) {
	assert.Empty(t, SecondarySearchContext("", "youth"))
	assert.Empty(t, SecondarySearchContext("text", ""))
}
