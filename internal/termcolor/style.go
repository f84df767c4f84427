package termcolor

import (
	"strconv"
	"strings"
)

type Style struct {
	Bold  bool
	Dim   bool
	FG    int // 30-37, 0 for default
	FG256 int // 1-255, 0 for unset; wins over FG
}

func (s Style) codes() []string {
	codes := make([]string, 0, 3)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	switch {
	case s.FG256 > 0:
		codes = append(codes, "38;5;"+strconv.Itoa(s.FG256))
	case s.FG > 0:
		codes = append(codes, strconv.Itoa(s.FG))
	}
	return codes
}

// Paint wraps text in SGR sequences when on is true.
func Paint(s Style, text string, on bool) string {
	if !on || text == "" {
		return text
	}
	codes := s.codes()
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}
