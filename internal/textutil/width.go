// Package textutil measures text the way a terminal displays it.
package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CSI and OSC escape sequences.
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns the display width of s, ignoring escape sequences and
// measuring each grapheme cluster once.
func VisibleWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// Truncate cuts s to at most w cells without splitting a grapheme. When s is
// cut and tail fits, tail is appended. Escape sequences are dropped.
func Truncate(s string, w int, tail string) string {
	if w <= 0 || s == "" {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	tailW := VisibleWidth(tail)
	limit := w - tailW
	if limit < 0 {
		limit, tail = w, ""
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		cw := runewidth.StringWidth(g.Str())
		if used+cw > limit {
			break
		}
		b.WriteString(g.Str())
		used += cw
	}
	return b.String() + tail
}

// PadRight pads s with spaces up to w cells.
func PadRight(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// PadLeft pads s with spaces on the left up to w cells.
func PadLeft(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

// OneLine replaces line breaks and tabs so s fits in a single table cell.
func OneLine(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	r := strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")
	return r.Replace(s)
}
