package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type Mode int

const (
	ModeAuto Mode = iota
	ModeAlways
	ModeNever
)

func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

// Env is a snapshot of the environment variables that affect coloring.
type Env map[string]string

// EnvFrom parses KEY=VALUE pairs as returned by os.Environ.
func EnvFrom(values []string) Env {
	env := make(Env, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

func (e Env) get(key string) string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e[key])
}

// Enabled decides whether out receives escape sequences.
//
// auto の判定順 (先勝ち):
//  1. TERM=dumb / NO_COLOR / CLICOLOR=0 で無効
//  2. CLICOLOR_FORCE / FORCE_COLOR が 0 以外なら有効
//  3. それ以外は out が TTY のときだけ有効
func Enabled(mode Mode, out *os.File, env Env) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if out == nil {
		return false
	}
	if strings.EqualFold(env.get("TERM"), "dumb") || env.get("NO_COLOR") != "" || env.get("CLICOLOR") == "0" {
		return false
	}
	if forced(env.get("CLICOLOR_FORCE")) || forced(env.get("FORCE_COLOR")) {
		return true
	}
	return term.IsTerminal(int(out.Fd()))
}

func forced(v string) bool {
	return v != "" && v != "0"
}
