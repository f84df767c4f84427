// Package output renders line reports, replacements and copybook lookups.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phyten/cobolx/internal/comment"
	"github.com/phyten/cobolx/internal/termcolor"
	"github.com/phyten/cobolx/internal/textutil"
)

// CardWidth is the width of a fixed-format source line (sequence area
// through identification area).
const CardWidth = 80

var reportHeaders = []string{"LINE", "STATUS", "BLANK", "TEXT"}

// TableOptions control the human readable table.
type TableOptions struct {
	Color   bool
	Palette termcolor.Palette
	// TextWidth truncates the TEXT column; 0 means CardWidth, negative
	// disables truncation.
	TextWidth int
}

// WriteReport renders reports in format (table|tsv|csv|markdown|ndjson|json).
func WriteReport(w io.Writer, format string, reports []comment.LineReport, opts TableOptions) error {
	switch format {
	case "", "table", "text":
		return WriteReportTable(w, reports, opts)
	case "tsv":
		return WriteReportTSV(w, reports)
	case "csv":
		return WriteReportCSV(w, reports)
	case "markdown":
		return WriteReportMarkdown(w, reports)
	case "ndjson", "json":
		return WriteReportNDJSON(w, reports)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func reportRow(r comment.LineReport) []string {
	return []string{strconv.Itoa(r.Line), r.Kind, strconv.FormatBool(r.Blank), r.Text}
}

// WriteReportTable aligns the report in padded columns. Padding is computed
// on display width so that colored cells line up.
func WriteReportTable(w io.Writer, reports []comment.LineReport, opts TableOptions) error {
	textWidth := opts.TextWidth
	if textWidth == 0 {
		textWidth = CardWidth
	}
	widths := make([]int, len(reportHeaders)-1)
	for i, h := range reportHeaders[:len(widths)] {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, r := range reports {
		for i, cell := range reportRow(r)[:len(widths)] {
			if cw := textutil.VisibleWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	header := make([]string, len(reportHeaders))
	for i, h := range reportHeaders {
		cell := termcolor.Paint(opts.Palette.Header(), h, opts.Color)
		if i < len(widths) {
			cell = textutil.PadRight(cell, widths[i])
		}
		header[i] = cell
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(header, "  "), " ")); err != nil {
		return err
	}

	for _, r := range reports {
		row := reportRow(r)
		text := textutil.OneLine(row[3])
		if textWidth > 0 {
			text = textutil.Truncate(text, textWidth, "…")
		}
		style := opts.Palette.Status(r.Kind)
		if r.Blank && !r.Status.IsComment() {
			style = opts.Palette.Blank()
		}
		cells := []string{
			textutil.PadLeft(row[0], widths[0]),
			textutil.PadRight(termcolor.Paint(style, row[1], opts.Color), widths[1]),
			textutil.PadRight(row[2], widths[2]),
			termcolor.Paint(style, text, opts.Color),
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteReportTSV writes one tab separated row per line.
func WriteReportTSV(w io.Writer, reports []comment.LineReport) error {
	if _, err := fmt.Fprintln(w, strings.Join(reportHeaders, "\t")); err != nil {
		return err
	}
	for _, r := range reports {
		row := reportRow(r)
		row[3] = textutil.OneLine(row[3])
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// WriteReportCSV renders RFC 4180 CSV (including CRLF endings).
func WriteReportCSV(w io.Writer, reports []comment.LineReport) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(reportHeaders); err != nil {
		return err
	}
	for _, r := range reports {
		if err := writer.Write(reportRow(r)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteReportMarkdown renders a GitHub Flavored Markdown table.
func WriteReportMarkdown(w io.Writer, reports []comment.LineReport) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(reportHeaders, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(reportHeaders))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, r := range reports {
		row := reportRow(r)
		for i := range row {
			row[i] = escapeMarkdownCell(row[i])
		}
		if row[3] != "" {
			row[3] = codeSpan(row[3])
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | ")); err != nil {
			return err
		}
	}
	return nil
}

// codeSpan fences s with one more backtick than its longest backtick run.
// A space is added on both sides when s starts or ends with a backtick, or
// when it starts and ends with spaces that the renderer would strip.
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") ||
		(strings.HasPrefix(s, " ") && strings.HasSuffix(s, " ") && strings.TrimSpace(s) != "") {
		s = " " + s + " "
	}
	return fence + s + fence
}

func escapeMarkdownCell(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<br>")
	s = strings.ReplaceAll(s, "|", "\\|")
	return s
}

// WriteReportNDJSON streams one JSON object per line.
func WriteReportNDJSON(w io.Writer, reports []comment.LineReport) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
