// Package detect recognises COBOL sources and copybooks by name and content.
package detect

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
)

const (
	LangCOBOL    = "cobol"
	LangCopybook = "copybook"
)

type Info struct {
	Name string
	// ByContent is set when the file name alone was not conclusive.
	ByContent bool
}

// Known reports whether the file was recognised at all.
func (i Info) Known() bool { return i.Name != "" }

var extensionLanguages = map[string]string{
	".cbl":   LangCOBOL,
	".cob":   LangCOBOL,
	".cobol": LangCOBOL,
	".pco":   LangCOBOL,
	".sqb":   LangCOBOL,
	".ccp":   LangCOBOL,
	".cpy":   LangCopybook,
	".copy":  LangCopybook,
	".cpb":   LangCopybook,
	".inc":   LangCopybook,
}

var langAliases = map[string]string{
	"cob":       LangCOBOL,
	"cbl":       LangCOBOL,
	"cpy":       LangCopybook,
	"copy":      LangCopybook,
	"copybooks": LangCopybook,
}

// sniffLines bounds how far into the file the content heuristic looks.
const sniffLines = 200

func FromPathAndContent(p string, data []byte) Info {
	if name := detectByPath(p); name != "" {
		return Info{Name: name}
	}
	if name := detectByContent(data); name != "" {
		return Info{Name: name, ByContent: true}
	}
	return Info{}
}

func detectByPath(p string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(p)))
	if ext == "" {
		return ""
	}
	return extensionLanguages[ext]
}

// detectByContent looks at the content area of the first lines. A division
// header or a compiler directive makes the file a program; a level 01 entry
// without any division makes it a copybook.
func detectByContent(data []byte) string {
	if len(data) == 0 || bytes.IndexByte(data[:min(len(data), 8000)], 0) >= 0 {
		return ""
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	levelEntry := false
	for n := 0; n < sniffLines && sc.Scan(); n++ {
		line := sc.Text()
		fields := strings.Fields(strings.ToUpper(contentArea(line)))
		if len(fields) == 0 {
			continue
		}
		switch {
		case len(fields) >= 2 && strings.HasPrefix(fields[1], "DIVISION"):
			return LangCOBOL
		case fields[0] == "CBL" || fields[0] == "PROCESS":
			return LangCOBOL
		case fields[0] == "01" || fields[0] == "1":
			levelEntry = true
		}
	}
	if levelEntry {
		return LangCopybook
	}
	return ""
}

// contentArea returns columns 8-72 of a fixed-format line, or the whole line
// when a directive starts in the sequence area.
func contentArea(line string) string {
	r := []rune(line)
	trimmed := strings.TrimLeft(line, " ")
	upper := strings.ToUpper(trimmed)
	if strings.HasPrefix(upper, "CBL") || strings.HasPrefix(upper, "PROCESS") {
		return trimmed
	}
	if len(r) <= 7 || r[6] == '*' || r[6] == '/' {
		return ""
	}
	end := len(r)
	if end > 72 {
		end = 72
	}
	return string(r[7:end])
}

func NormalizeLangName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ""
	}
	if canon, ok := langAliases[n]; ok {
		return canon
	}
	return n
}
