package comment

import (
	"strings"
	"unicode/utf8"
)

// Fixed-format column layout, as 0-based rune indexes. Lines are sliced at
// the byte offsets of these columns, so bytes that are not valid UTF-8 pass
// through untouched and count as one column each.
const (
	sequenceWidth  = 6  // columns 1-6
	indicatorIndex = 6  // column 7
	contentStart   = 7  // column 8
	contentEnd     = 72 // one past column 72
)

// Status は行のインジケータ領域（7 桁目）から導かれるコメント状態です。
type Status int

const (
	StatusComment Status = iota
	StatusCommentedTwice
	// StatusOtherType is a non-blank indicator that is not a comment, such as
	// a continuation '-' or a debugging 'D'.
	StatusOtherType
	StatusNonComment
	StatusFloatingComment
)

func (s Status) String() string {
	switch s {
	case StatusComment:
		return "comment"
	case StatusCommentedTwice:
		return "commented-twice"
	case StatusOtherType:
		return "other"
	case StatusNonComment:
		return "code"
	case StatusFloatingComment:
		return "floating-comment"
	default:
		return "unknown"
	}
}

// IsComment reports whether s is any comment variant.
func (s Status) IsComment() bool {
	return s == StatusComment || s == StatusCommentedTwice || s == StatusFloatingComment
}

// Classify derives the comment status of a source line. Lines shorter than
// seven runes have an implicit space indicator.
func Classify(line string) Status {
	indicator := ' '
	if r, ok := runeAt(line, indicatorIndex); ok {
		indicator = r
	}
	switch indicator {
	case '*', '/':
		if r, ok := runeAt(line, contentStart); ok && (r == '*' || r == '/') {
			return StatusCommentedTwice
		}
		if _, _, ok := floatingMarker(line); ok {
			return StatusCommentedTwice
		}
		return StatusComment
	case ' ':
		if _, _, ok := floatingMarker(line); ok {
			return StatusFloatingComment
		}
		return StatusNonComment
	default:
		return StatusOtherType
	}
}

// FloatingMarker returns the rune index of a floating comment marker "*>"
// that starts in the content area and is preceded there only by spaces.
func FloatingMarker(line string) (int, bool) {
	col, _, ok := floatingMarker(line)
	return col, ok
}

// floatingMarker also returns the marker's byte offset.
func floatingMarker(line string) (col, off int, ok bool) {
	off = runeOffset(line, contentStart)
	for col = contentStart; off < len(line); col++ {
		if strings.HasPrefix(line[off:], "*>") {
			return col, off, true
		}
		if line[off] != ' ' {
			break
		}
		off++
	}
	return -1, -1, false
}

// IsBlank reports whether the indicator and content areas (columns 7-72) hold
// only spaces. Anything past column 72 is ignored.
func IsBlank(line string) bool {
	start := runeOffset(line, indicatorIndex)
	if start >= len(line) {
		return true
	}
	end := runeOffset(line, contentEnd)
	return strings.TrimLeft(line[start:end], " ") == ""
}

// runeOffset returns the byte offset of rune n in line, or len(line) when
// the line is shorter.
func runeOffset(line string, n int) int {
	off := 0
	for ; n > 0 && off < len(line); n-- {
		_, size := utf8.DecodeRuneInString(line[off:])
		off += size
	}
	return off
}

func runeAt(line string, n int) (rune, bool) {
	off := runeOffset(line, n)
	if off >= len(line) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(line[off:])
	return r, true
}
