package vcard

import (
	"strings"
	"unicode/utf8"
)

// CRLF is the vCard line terminator.
const CRLF = "\r\n"

// DefaultFoldWidth is the canonical maximum physical line length in octets.
// RFC 6350 section 3.2: lines SHOULD NOT be longer than 75 octets.
const DefaultFoldWidth = 75

// Line is one logical (unfolded) content line.
type Line struct {
	// Text is the unfolded line without its terminator.
	Text string

	// Physical holds the folded physical lines the logical line was built from,
	// including the leading whitespace of continuation lines.
	Physical []string

	// Number is the 1-indexed physical line where the logical line starts.
	Number int

	// SoftBreaks is set when a quoted-printable value continued past a
	// trailing '=' onto the next physical line.
	SoftBreaks bool
}

// FoldWidth returns the length of the first physical line when the logical line
// was folded in the source, or 0 when it was written on a single line.
func (l Line) FoldWidth() int {
	if len(l.Physical) < 2 {
		return 0
	}
	return len(l.Physical[0])
}

// Unfold reverses line folding: every line terminator followed by a single
// space or tab is removed together with that whitespace character, and the
// result is split into logical lines. Empty lines are dropped.
//
// A quoted-printable value ending in '=' continues on the next physical line
// (a soft line break); the '=' is dropped and the lines are joined.
//
// CRLF is the wire terminator, but bare LF is tolerated.
func Unfold(text string) []Line {
	physical := strings.Split(text, "\n")

	var lines []Line
	var current *Line

	flush := func() {
		if current != nil && strings.TrimSpace(current.Text) != "" {
			lines = append(lines, *current)
		}
		current = nil
	}

	for i, p := range physical {
		p = strings.TrimSuffix(p, "\r")

		if current != nil && isContinuation(p) {
			current.Text += p[1:]
			current.Physical = append(current.Physical, p)
			continue
		}
		if current != nil && p != "" && !isCardEnd(p) && isSoftBreak(current.Text) {
			current.Text = current.Text[:len(current.Text)-1] + p
			current.Physical = append(current.Physical, p)
			current.SoftBreaks = true
			continue
		}

		flush()
		current = &Line{
			Text:     p,
			Physical: []string{p},
			Number:   i + 1,
		}
	}
	flush()

	return lines
}

func isContinuation(p string) bool {
	return len(p) > 0 && (p[0] == ' ' || p[0] == '\t')
}

func isCardEnd(p string) bool {
	return strings.EqualFold(strings.TrimSpace(p), "END:VCARD")
}

// isSoftBreak reports whether a logical line is a quoted-printable property
// whose value ends in a soft line break.
func isSoftBreak(text string) bool {
	if !strings.HasSuffix(text, "=") {
		return false
	}
	sep := indexUnquoted(text, ':')
	if sep < 0 || sep == len(text)-1 {
		return false
	}
	return strings.Contains(strings.ToUpper(text[:sep]), EncodingQuotedPrintable)
}

// Fold splits a logical line into physical lines of at most width octets.
// Continuation lines start with a single space which counts towards the width.
// UTF-8 sequences are never split. A width below 2 disables folding.
func Fold(line string, width int) string {
	if width < 2 || len(line) <= width {
		return line
	}

	var sb strings.Builder
	sb.Grow(len(line) + 3*(len(line)/(width-1)+1))

	cut := foldCut(line, width)
	sb.WriteString(line[:cut])
	rest := line[cut:]

	for rest != "" {
		cut = foldCut(rest, width-1)
		sb.WriteString(CRLF)
		sb.WriteByte(' ')
		sb.WriteString(rest[:cut])
		rest = rest[cut:]
	}

	return sb.String()
}

// foldCut returns the largest cut position <= n that does not fall inside a
// UTF-8 sequence. When the first rune alone is longer than n the cut is made
// after it.
func foldCut(s string, n int) int {
	if n >= len(s) {
		return len(s)
	}
	i := n
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	if i > 0 {
		return i
	}
	i = n
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return i
}
