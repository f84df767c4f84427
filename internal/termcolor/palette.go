package termcolor

import (
	"strconv"
	"strings"
)

// Palette maps line statuses to styles for the current terminal.
type Palette struct {
	ANSI256 bool
	Light   bool
}

// DetectPalette inspects TERM/COLORTERM for 256-color support and COLORFGBG
// for a light background.
func DetectPalette(env Env) Palette {
	var p Palette
	termName := strings.ToLower(env.get("TERM"))
	colorTerm := strings.ToLower(env.get("COLORTERM"))
	p.ANSI256 = strings.Contains(termName, "256color") || colorTerm == "truecolor" || colorTerm == "24bit"

	if raw := env.get("COLORFGBG"); raw != "" {
		parts := strings.Split(raw, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			p.Light = bg >= 7
			return p
		}
	}
	p.Light = strings.Contains(termName, "light")
	return p
}

func (p Palette) Header() Style {
	return Style{Bold: true}
}

// Status returns the style of a status name as reported by comment.Status.
func (p Palette) Status(name string) Style {
	switch name {
	case "comment":
		if p.ANSI256 {
			if p.Light {
				return Style{FG256: 28}
			}
			return Style{FG256: 114}
		}
		return Style{FG: 32}
	case "commented-twice":
		if p.ANSI256 {
			return Style{FG256: 172}
		}
		return Style{FG: 33}
	case "floating-comment":
		if p.ANSI256 {
			return Style{FG256: 73}
		}
		return Style{FG: 36}
	case "other":
		return Style{FG: 35}
	default:
		return Style{}
	}
}

// Blank styles lines without content in columns 7-72.
func (p Palette) Blank() Style {
	return Style{Dim: true}
}
