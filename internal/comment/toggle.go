package comment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/phyten/cobolx/internal/editor"
)

// Action は選択範囲に対して行う操作です。
type Action int

const (
	ActionComment Action = iota
	ActionUncomment
	ActionToggle
)

func (a Action) String() string {
	switch a {
	case ActionComment:
		return "comment"
	case ActionUncomment:
		return "uncomment"
	default:
		return "toggle"
	}
}

// ParseAction accepts comment, uncomment or toggle in any case.
func ParseAction(raw string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "comment":
		return ActionComment, nil
	case "uncomment":
		return ActionUncomment, nil
	case "", "toggle":
		return ActionToggle, nil
	default:
		return ActionToggle, fmt.Errorf("invalid comment action: %s", raw)
	}
}

// Document is the part of the host editor the toggle engine reads from.
type Document interface {
	LineCount() int
	LineAt(i int) editor.TextLine
	EOL() editor.EOL
}

// Toggle computes one replacement per selection. The caller applies the
// returned edits as a single transaction; no selections means no edits.
func Toggle(doc Document, selections []editor.Selection, action Action) []editor.Edit {
	if doc == nil || len(selections) == 0 {
		return nil
	}
	edits := make([]editor.Edit, 0, len(selections))
	for _, sel := range selections {
		if edit, ok := toggleSelection(doc, sel, action); ok {
			edits = append(edits, edit)
		}
	}
	return edits
}

func toggleSelection(doc Document, sel editor.Selection, action Action) (editor.Edit, bool) {
	first, last := sel.Start.Line, sel.End.Line
	if first > last {
		first, last = last, first
	}
	if first < 0 {
		first = 0
	}
	if n := doc.LineCount(); last >= n {
		last = n - 1
	}
	if last < first {
		return editor.Edit{}, false
	}

	selected := make([]editor.TextLine, 0, last-first+1)
	normalized := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		line := doc.LineAt(i)
		selected = append(selected, line)
		normalized = append(normalized, EnsureIndicatorArea(line.Text))
	}

	start, end := nonBlankRegion(normalized)
	region := normalized[start:end]
	transform := transformFor(action, region)
	out := make([]string, len(region))
	for i, line := range region {
		out[i] = transform(line)
	}

	rng := editor.Range{Start: editor.Position{Line: first + start}}
	if end == len(normalized) {
		rng.End = selected[len(selected)-1].Range.End
	} else {
		lastLine := selected[end-1]
		rng.End = editor.Position{
			Line:      lastLine.Range.Start.Line,
			Character: utf8.RuneCountInString(lastLine.Text),
		}
	}
	return editor.Edit{Range: rng, Text: strings.Join(out, doc.EOL().String())}, true
}

// nonBlankRegion returns the half-open index range between the first and the
// last non-blank line. A wholly blank slice yields the full range.
func nonBlankRegion(lines []string) (int, int) {
	start := -1
	for i, line := range lines {
		if !IsBlank(line) {
			start = i
			break
		}
	}
	end := len(lines)
	if start == -1 {
		return 0, end
	}
	for end > start && IsBlank(lines[end-1]) {
		end--
	}
	return start, end
}

func transformFor(action Action, region []string) func(string) string {
	switch action {
	case ActionComment:
		return CommentLine
	case ActionUncomment:
		return UncommentLine
	default:
		for _, line := range region {
			if !Classify(line).IsComment() {
				return CommentLine
			}
		}
		return UncommentLine
	}
}

// LineReport is the classification of one document line.
type LineReport struct {
	Line   int    `json:"line"`
	Status Status `json:"-"`
	Kind   string `json:"status"`
	Blank  bool   `json:"blank"`
	Text   string `json:"text"`
}

// Report classifies every line of lines. Line numbers are 1-based.
func Report(lines []string) []LineReport {
	out := make([]LineReport, len(lines))
	for i, raw := range lines {
		text := EnsureIndicatorArea(raw)
		st := Classify(text)
		out[i] = LineReport{
			Line:   i + 1,
			Status: st,
			Kind:   st.String(),
			Blank:  IsBlank(text),
			Text:   raw,
		}
	}
	return out
}
