// Package ui provides the box-drawing primitives used for console
// banners and the tree connectors used when listing failure details.
package ui

import (
	"strings"
	"unicode/utf8"
)

// Box drawing characters for banners
const (
	BoxTopLeft     = "╔"
	BoxTopRight    = "╗"
	BoxBottomLeft  = "╚"
	BoxBottomRight = "╝"
	BoxHorizontal  = "═"
	BoxVertical    = "║"
	BoxTeeRight    = "╠"
	BoxTeeLeft     = "╣"

	// Tree connectors for detail lines under a list entry
	TreeBranch     = "├── "
	TreeLastBranch = "└── "
	TreeContinue   = "│   "
)

// DefaultBannerWidth is the inner width of console banners, matching the
// 56-column frames the progress output is aligned to.
const DefaultBannerWidth = 56

// Banner builds a double-line box around a title and content lines.
type Banner struct {
	width int
	lines []string
}

// NewBanner returns a banner with the default width.
func NewBanner() *Banner {
	return &Banner{width: DefaultBannerWidth}
}

// WithWidth overrides the banner's inner width. Widths below the longest
// line are expanded when rendering.
func (b *Banner) WithWidth(w int) *Banner {
	b.width = w
	return b
}

// AddLine appends one content line to the banner body.
func (b *Banner) AddLine(s string) *Banner {
	b.lines = append(b.lines, s)
	return b
}

// AddSeparator appends a horizontal rule between content lines.
func (b *Banner) AddSeparator() *Banner {
	b.lines = append(b.lines, sepMarker)
	return b
}

const sepMarker = "\x00sep"

// Render produces the framed banner as a single string, one trailing
// newline included.
func (b *Banner) Render() string {
	width := b.width
	for _, l := range b.lines {
		if l == sepMarker {
			continue
		}
		if n := utf8.RuneCountInString(l) + 4; n > width {
			width = n
		}
	}

	rule := strings.Repeat(BoxHorizontal, width)
	var sb strings.Builder
	sb.WriteString(BoxTopLeft + rule + BoxTopRight + "\n")
	for _, l := range b.lines {
		if l == sepMarker {
			sb.WriteString(BoxTeeRight + rule + BoxTeeLeft + "\n")
			continue
		}
		sb.WriteString(BoxVertical + "  " + padRight(l, width-2) + BoxVertical + "\n")
	}
	sb.WriteString(BoxBottomLeft + rule + BoxBottomRight + "\n")
	return sb.String()
}

// padRight pads s with spaces to the given rune width. Lines longer than
// the width are kept intact rather than truncated.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
