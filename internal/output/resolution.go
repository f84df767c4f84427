package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/phyten/cobolx/internal/copybook"
)

type resolutionRecord struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Kind  string `json:"kind,omitempty"`
	Path  string `json:"path,omitempty"`
}

// WriteResolution prints a lookup result. In text format a hit prints the
// path alone and a miss prints "<name>: not found".
func WriteResolution(w io.Writer, format, name string, res copybook.Resolution, found bool) error {
	switch format {
	case "", "text", "table":
		if !found {
			_, err := fmt.Fprintf(w, "%s: not found\n", name)
			return err
		}
		_, err := fmt.Fprintln(w, res.Path)
		return err
	case "json", "ndjson":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		rec := resolutionRecord{Name: name, Found: found}
		if found {
			rec.Kind = res.Kind
			rec.Path = res.Path
		}
		return enc.Encode(rec)
	default:
		return fmt.Errorf("unsupported resolve output: %s", format)
	}
}
