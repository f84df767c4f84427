package editor

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Buffer is an in-memory text document. Line and character offsets are
// counted in runes, never in bytes.
type Buffer struct {
	lines []string
	eol   EOL
}

// NewBuffer splits data into lines. The line ending is taken from the first
// line break; a document without line breaks is LF.
func NewBuffer(data []byte) *Buffer {
	eol := LF
	if idx := bytes.IndexByte(data, '\n'); idx > 0 && data[idx-1] == '\r' {
		eol = CRLF
	}
	return &Buffer{lines: strings.Split(string(data), eol.String()), eol: eol}
}

// NewBufferFromLines builds a buffer from already split lines.
func NewBufferFromLines(lines []string, eol EOL) *Buffer {
	cp := make([]string, len(lines))
	copy(cp, lines)
	if len(cp) == 0 {
		cp = []string{""}
	}
	return &Buffer{lines: cp, eol: eol}
}

func (b *Buffer) EOL() EOL { return b.eol }

func (b *Buffer) LineCount() int { return len(b.lines) }

// LineAt returns line i. Out of range indexes are clamped to the first or
// last line, mirroring how editors treat positions past the document end.
func (b *Buffer) LineAt(i int) TextLine {
	if i < 0 {
		i = 0
	}
	if i >= len(b.lines) {
		i = len(b.lines) - 1
	}
	text := b.lines[i]
	return TextLine{
		Text: text,
		Range: Range{
			Start: Position{Line: i},
			End:   Position{Line: i, Character: utf8.RuneCountInString(text)},
		},
	}
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Text joins the lines with the document line ending.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, b.eol.String())
}

// FullRange covers the whole document.
func (b *Buffer) FullRange() Range {
	last := b.LineAt(len(b.lines) - 1)
	return Range{End: last.Range.End}
}

// ApplyEdits applies every edit or none of them. Ranges are validated and
// checked for overlap before the document is touched.
func (b *Buffer) ApplyEdits(edits []Edit) error {
	if len(edits) == 0 {
		return nil
	}
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	for i := range sorted {
		r, err := b.clampRange(sorted[i].Range)
		if err != nil {
			return fmt.Errorf("edit %d: %w", i, err)
		}
		sorted[i].Range = r
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Range.Start.Before(sorted[j].Range.Start)
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Range.Start.Before(sorted[i-1].Range.End) {
			return fmt.Errorf("overlapping edits at line %d", sorted[i].Range.Start.Line+1)
		}
	}

	text := b.Text()
	offsets := b.lineOffsets()
	for i := len(sorted) - 1; i >= 0; i-- {
		e := sorted[i]
		start := b.byteOffset(offsets, e.Range.Start)
		end := b.byteOffset(offsets, e.Range.End)
		text = text[:start] + e.Text + text[end:]
	}
	b.lines = strings.Split(text, b.eol.String())
	return nil
}

func (b *Buffer) clampRange(r Range) (Range, error) {
	if r.End.Before(r.Start) {
		return r, fmt.Errorf("range end %d:%d before start %d:%d",
			r.End.Line+1, r.End.Character, r.Start.Line+1, r.Start.Character)
	}
	if r.Start.Line < 0 || r.End.Line >= len(b.lines) {
		return r, fmt.Errorf("range lines %d-%d outside document of %d lines",
			r.Start.Line+1, r.End.Line+1, len(b.lines))
	}
	r.Start = b.clampPosition(r.Start)
	r.End = b.clampPosition(r.End)
	return r, nil
}

func (b *Buffer) clampPosition(p Position) Position {
	n := utf8.RuneCountInString(b.lines[p.Line])
	if p.Character < 0 {
		p.Character = 0
	}
	if p.Character > n {
		p.Character = n
	}
	return p
}

func (b *Buffer) lineOffsets() []int {
	offsets := make([]int, len(b.lines))
	sep := len(b.eol.String())
	pos := 0
	for i, line := range b.lines {
		offsets[i] = pos
		pos += len(line) + sep
	}
	return offsets
}

func (b *Buffer) byteOffset(offsets []int, p Position) int {
	line := b.lines[p.Line]
	col := 0
	for i := range line {
		if col == p.Character {
			return offsets[p.Line] + i
		}
		col++
	}
	return offsets[p.Line] + len(line)
}
