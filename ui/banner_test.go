package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerFrames(t *testing.T) {
	out := NewBanner().
		AddLine("Title").
		AddSeparator().
		AddLine("Body line").
		Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.True(t, strings.HasPrefix(lines[0], BoxTopLeft))
	assert.True(t, strings.HasSuffix(lines[0], BoxTopRight))
	assert.True(t, strings.HasPrefix(lines[2], BoxTeeRight))
	assert.True(t, strings.HasSuffix(lines[2], BoxTeeLeft))
	assert.True(t, strings.HasPrefix(lines[4], BoxBottomLeft))
	assert.True(t, strings.HasSuffix(lines[4], BoxBottomRight))

	assert.Contains(t, lines[1], "Title")
	assert.Contains(t, lines[3], "Body line")

	// Every line is the same rune width.
	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l))
	}
}

func TestBannerExpandsForLongLines(t *testing.T) {
	long := strings.Repeat("x", DefaultBannerWidth+10)
	out := NewBanner().AddLine(long).Render()
	assert.Contains(t, out, long)
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcd", padRight("abcd", 4))
	assert.Equal(t, "abcde", padRight("abcde", 4))
}
