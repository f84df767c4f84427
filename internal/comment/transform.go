package comment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var directiveRe = regexp.MustCompile(`(?i)^\s{0,6}((?:CBL|PROCESS)(?:\s.*)?)$`)

// EnsureIndicatorArea moves a CBL/PROCESS compiler directive that starts in
// the sequence or indicator area so that the keyword begins at column 8.
// Other lines are returned unchanged.
func EnsureIndicatorArea(line string) string {
	m := directiveRe.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	return strings.Repeat(" ", contentStart) + m[1]
}

// SetIndicator returns line with column 7 replaced by indicator. Lines
// shorter than six runes get their sequence area padded with spaces.
func SetIndicator(line string, indicator rune) string {
	seqEnd := runeOffset(line, sequenceWidth)
	var b strings.Builder
	b.Grow(len(line) + sequenceWidth)
	b.WriteString(line[:seqEnd])
	b.WriteString(strings.Repeat(" ", sequenceWidth-utf8.RuneCountInString(line[:seqEnd])))
	b.WriteRune(indicator)
	b.WriteString(line[runeOffset(line, contentStart):])
	return b.String()
}

// CommentLine comments a line. A line that already is a comment gets one
// more '*' inserted at column 7, which turns it into a doubly-marked comment.
func CommentLine(line string) string {
	if Classify(line).IsComment() {
		off := runeOffset(line, indicatorIndex)
		return line[:off] + "*" + line[off:]
	}
	return SetIndicator(line, '*')
}

// UncommentLine removes one layer of comment marking. Code and lines with a
// non-comment indicator are returned unchanged.
func UncommentLine(line string) string {
	switch Classify(line) {
	case StatusComment:
		return SetIndicator(line, ' ')
	case StatusCommentedTwice:
		return line[:runeOffset(line, indicatorIndex)] + line[runeOffset(line, contentStart):]
	case StatusFloatingComment:
		_, start, _ := floatingMarker(line)
		end := start + len("*>")
		if end < len(line) && line[end] == ' ' {
			end++
		}
		return line[:start] + line[end:]
	default:
		return line
	}
}
