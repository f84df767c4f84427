package comment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/phyten/cobolx/internal/editor"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func lines(from, to int) editor.Selection {
	return editor.Selection{
		Start: editor.Position{Line: from},
		End:   editor.Position{Line: to, Character: 3},
	}
}

func applyToggle(t *testing.T, doc []string, action Action, sels ...editor.Selection) []string {
	t.Helper()
	buf := editor.NewBufferFromLines(doc, editor.LF)
	edits := Toggle(buf, sels, action)
	if err := buf.ApplyEdits(edits); err != nil {
		t.Fatalf("ApplyEdits failed: %v", err)
	}
	return buf.Lines()
}

func TestToggleAllCommentsUncomments(t *testing.T) {
	doc := []string{
		"      * FIRST",
		"      ** SECOND",
		"       *> THIRD",
	}
	got := applyToggle(t, doc, ActionToggle, lines(0, 2))
	want := []string{
		"        FIRST",
		"      * SECOND",
		"       THIRD",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("toggle mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleCodeComments(t *testing.T) {
	doc := []string{
		"       MOVE A TO B.",
		"       MOVE C TO D.",
	}
	got := applyToggle(t, doc, ActionToggle, lines(0, 1))
	want := []string{
		"      *MOVE A TO B.",
		"      *MOVE C TO D.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("toggle mismatch (-want +got):\n%s", diff)
	}
	again := applyToggle(t, got, ActionToggle, lines(0, 1))
	if diff := cmp.Diff(doc, again); diff != "" {
		t.Fatalf("second toggle should restore the code (-want +got):\n%s", diff)
	}
}

func TestToggleKeepsInvalidUTF8Bytes(t *testing.T) {
	doc := []string{
		"       DISPLAY 'CAF\xc9'.",
		"       MOVE '\xe9t\xe9' TO B.",
		"",
	}
	buf := editor.NewBufferFromLines(doc, editor.LF)
	if err := buf.ApplyEdits(Toggle(buf, []editor.Selection{{End: buf.FullRange().End}}, ActionToggle)); err != nil {
		t.Fatalf("ApplyEdits failed: %v", err)
	}
	want := "      *DISPLAY 'CAF\xc9'.\n      *MOVE '\xe9t\xe9' TO B.\n"
	if got := buf.Text(); got != want {
		t.Fatalf("Text()=%q want %q", got, want)
	}
	again := applyToggle(t, buf.Lines(), ActionToggle, lines(0, 1))
	if diff := cmp.Diff(doc, again); diff != "" {
		t.Fatalf("second toggle should restore the bytes (-want +got):\n%s", diff)
	}
}

func TestToggleMixedRegionCommentsEverything(t *testing.T) {
	doc := []string{
		"      * ALREADY",
		"       MOVE A TO B.",
		"      -    'CONT'",
	}
	got := applyToggle(t, doc, ActionToggle, lines(0, 2))
	want := []string{
		"      ** ALREADY",
		"      *MOVE A TO B.",
		"      *    'CONT'",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mixed toggle mismatch (-want +got):\n%s", diff)
	}
}

func TestTogglePreservesSurroundingBlankLines(t *testing.T) {
	doc := []string{
		"",
		"000100",
		"       MOVE A TO B.",
		"       MOVE C TO D.",
		"            ",
		"",
	}
	for _, action := range []Action{ActionComment, ActionUncomment, ActionToggle} {
		t.Run(action.String(), func(t *testing.T) {
			buf := editor.NewBufferFromLines(doc, editor.LF)
			edits := Toggle(buf, []editor.Selection{lines(0, 5)}, action)
			if len(edits) != 1 {
				t.Fatalf("expected 1 edit, got %d", len(edits))
			}
			wantRange := editor.Range{
				Start: editor.Position{Line: 2},
				End:   editor.Position{Line: 3, Character: len("       MOVE C TO D.")},
			}
			if diff := cmp.Diff(wantRange, edits[0].Range); diff != "" {
				t.Fatalf("range mismatch (-want +got):\n%s", diff)
			}
			if err := buf.ApplyEdits(edits); err != nil {
				t.Fatalf("ApplyEdits failed: %v", err)
			}
			got := buf.Lines()
			for _, i := range []int{0, 1, 4, 5} {
				if got[i] != doc[i] {
					t.Fatalf("blank line %d changed: %q -> %q", i, doc[i], got[i])
				}
			}
		})
	}
}

func TestToggleRegionReachingSelectionEndUsesSelectionLineEnd(t *testing.T) {
	doc := []string{
		"",
		"       MOVE A TO B.",
		"       MOVE C TO D.",
		"       MOVE E TO F.",
	}
	buf := editor.NewBufferFromLines(doc, editor.LF)
	edits := Toggle(buf, []editor.Selection{lines(0, 2)}, ActionComment)
	want := []editor.Edit{{
		Range: editor.Range{
			Start: editor.Position{Line: 1},
			End:   editor.Position{Line: 2, Character: len(doc[2])},
		},
		Text: "      *MOVE A TO B.\n      *MOVE C TO D.",
	}}
	if diff := cmp.Diff(want, edits); diff != "" {
		t.Fatalf("edits mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleDirectiveIsReanchored(t *testing.T) {
	got := applyToggle(t, []string{"  CBL SOMEOPT"}, ActionComment, lines(0, 0))
	if got[0] != "      *CBL SOMEOPT" {
		t.Fatalf("unexpected directive comment: %q", got[0])
	}
	if got[0][6] != '*' || got[0][7:10] != "CBL" {
		t.Fatalf("marker must be at column 7 and keyword at column 8: %q", got[0])
	}
	back := applyToggle(t, got, ActionToggle, lines(0, 0))
	if back[0] != "       CBL SOMEOPT" {
		t.Fatalf("unexpected directive uncomment: %q", back[0])
	}
}

func TestToggleUsesDocumentLineEnding(t *testing.T) {
	buf := editor.NewBuffer([]byte("       A.\r\n       B.\r\n"))
	edits := Toggle(buf, []editor.Selection{lines(0, 1)}, ActionComment)
	if len(edits) != 1 || edits[0].Text != "      *A.\r\n      *B." {
		t.Fatalf("unexpected edits: %+v", edits)
	}
	if err := buf.ApplyEdits(edits); err != nil {
		t.Fatalf("ApplyEdits failed: %v", err)
	}
	if got := buf.Text(); got != "      *A.\r\n      *B.\r\n" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestToggleMultipleSelections(t *testing.T) {
	doc := []string{
		"       MOVE A TO B.",
		"      * NOTE",
		"       MOVE C TO D.",
		"      * OTHER NOTE",
	}
	got := applyToggle(t, doc, ActionToggle, lines(0, 0), lines(3, 3))
	want := []string{
		"      *MOVE A TO B.",
		"      * NOTE",
		"       MOVE C TO D.",
		"        OTHER NOTE",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("multi-selection mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleNoSelectionsIsNoop(t *testing.T) {
	buf := editor.NewBufferFromLines([]string{"       MOVE A TO B."}, editor.LF)
	if edits := Toggle(buf, nil, ActionToggle); len(edits) != 0 {
		t.Fatalf("expected no edits, got %+v", edits)
	}
	if edits := Toggle(nil, []editor.Selection{lines(0, 0)}, ActionToggle); len(edits) != 0 {
		t.Fatalf("expected no edits for nil document, got %+v", edits)
	}
}

func TestToggleWhollyBlankSelection(t *testing.T) {
	doc := []string{"", "      "}
	buf := editor.NewBufferFromLines(doc, editor.LF)
	edits := Toggle(buf, []editor.Selection{lines(0, 1)}, ActionToggle)
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}
	if edits[0].Range.Start != (editor.Position{Line: 0}) {
		t.Fatalf("blank region must start at the selection start, got %+v", edits[0].Range.Start)
	}
}

func TestToggleClampsSelectionToDocument(t *testing.T) {
	doc := []string{"       MOVE A TO B."}
	got := applyToggle(t, doc, ActionComment, lines(0, 9))
	if diff := cmp.Diff([]string{"      *MOVE A TO B."}, got); diff != "" {
		t.Fatalf("clamped toggle mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAction(t *testing.T) {
	cases := map[string]Action{
		"comment":   ActionComment,
		"UNCOMMENT": ActionUncomment,
		" toggle ":  ActionToggle,
		"":          ActionToggle,
	}
	for in, want := range cases {
		got, err := ParseAction(in)
		if err != nil {
			t.Fatalf("ParseAction(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseAction(%q)=%v want %v", in, got, want)
		}
	}
	if _, err := ParseAction("flip"); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestReport(t *testing.T) {
	got := Report([]string{"      * NOTE", "  CBL APOST", ""})
	want := []LineReport{
		{Line: 1, Status: StatusComment, Kind: "comment", Text: "      * NOTE"},
		{Line: 2, Status: StatusNonComment, Kind: "code", Text: "  CBL APOST"},
		{Line: 3, Status: StatusNonComment, Kind: "code", Blank: true, Text: ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}
