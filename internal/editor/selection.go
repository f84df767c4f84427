package editor

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseSelection parses a 1-based selection as written on the command line:
//
//	"12"        line 12
//	"3-7"       lines 3 through 7
//	"3:4-7:10"  from line 3 column 4 to line 7 column 10
//
// The result is 0-based. A missing column means the start or end of the line;
// the end of the line is expressed as a very large character offset that
// Buffer.ApplyEdits clamps.
func ParseSelection(raw string) (Selection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Selection{}, fmt.Errorf("empty selection")
	}
	startRaw, endRaw, hasEnd := strings.Cut(raw, "-")
	start, err := parsePoint(startRaw, false)
	if err != nil {
		return Selection{}, fmt.Errorf("invalid selection %q: %w", raw, err)
	}
	end := Position{Line: start.Line, Character: lineEnd}
	if hasEnd {
		end, err = parsePoint(endRaw, true)
		if err != nil {
			return Selection{}, fmt.Errorf("invalid selection %q: %w", raw, err)
		}
	}
	if end.Before(start) {
		return Selection{}, fmt.Errorf("invalid selection %q: end before start", raw)
	}
	return Selection{Start: start, End: end}, nil
}

const lineEnd = int(^uint(0) >> 2)

func parsePoint(s string, isEnd bool) (Position, error) {
	lineRaw, colRaw, hasCol := strings.Cut(strings.TrimSpace(s), ":")
	line, err := strconv.Atoi(strings.TrimSpace(lineRaw))
	if err != nil || line < 1 {
		return Position{}, fmt.Errorf("line must be a positive integer: %q", lineRaw)
	}
	p := Position{Line: line - 1}
	if isEnd {
		p.Character = lineEnd
	}
	if hasCol {
		col, err := strconv.Atoi(strings.TrimSpace(colRaw))
		if err != nil || col < 1 {
			return Position{}, fmt.Errorf("column must be a positive integer: %q", colRaw)
		}
		p.Character = col - 1
	}
	return p, nil
}

// PathFromURI converts a file:// URI or a plain path into a filesystem path.
func PathFromURI(uri string) (string, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", fmt.Errorf("empty document uri")
	}
	if !strings.Contains(uri, "://") {
		return filepath.Clean(uri), nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse document uri: %w", err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported document uri scheme: %s", u.Scheme)
	}
	return filepath.FromSlash(u.Path), nil
}

// URIFromPath returns the file:// URI of an absolute or relative path.
func URIFromPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}
