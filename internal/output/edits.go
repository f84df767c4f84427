package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/cobolx/internal/editor"
)

type replacementRecord struct {
	StartLine      int    `json:"start_line"`
	StartCharacter int    `json:"start_character"`
	EndLine        int    `json:"end_line"`
	EndCharacter   int    `json:"end_character"`
	Text           string `json:"text"`
}

// WriteReplacementsNDJSON lists edits one per line. Positions stay 0-based
// so the records can be fed back to an editor unchanged.
func WriteReplacementsNDJSON(w io.Writer, edits []editor.Edit) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, e := range edits {
		rec := replacementRecord{
			StartLine:      e.Range.Start.Line,
			StartCharacter: e.Range.Start.Character,
			EndLine:        e.Range.End.Line,
			EndCharacter:   e.Range.End.Character,
			Text:           e.Text,
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
