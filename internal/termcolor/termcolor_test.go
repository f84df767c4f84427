package termcolor

import (
	"os"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		input string
		want  Mode
		err   bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"always", ModeAlways, false},
		{"never", ModeNever, false},
		{"ALWAYS", ModeAlways, false},
		{"invalid", ModeAuto, true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.input)
		if tc.err {
			if err == nil {
				t.Fatalf("ParseMode(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMode(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q)=%v want %v", tc.input, got, tc.want)
		}
	}
}

func TestEnabledEnvironmentOverrides(t *testing.T) {
	_, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()

	cases := []struct {
		name string
		env  Env
		want bool
	}{
		{"no color", Env{"NO_COLOR": "1"}, false},
		{"clicolor force", Env{"CLICOLOR_FORCE": "1"}, true},
		{"force color 2", Env{"FORCE_COLOR": "2"}, true},
		{"force color 0", Env{"FORCE_COLOR": "0"}, false},
		{"no color beats force", Env{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, false},
		{"clicolor 0", Env{"CLICOLOR": "0"}, false},
		{"dumb beats force", Env{"TERM": "dumb", "FORCE_COLOR": "1"}, false},
		{"pipe", nil, false},
	}
	for _, tc := range cases {
		if got := Enabled(ModeAuto, w, tc.env); got != tc.want {
			t.Fatalf("%s: Enabled=%v want %v", tc.name, got, tc.want)
		}
	}

	if !Enabled(ModeAlways, nil, nil) {
		t.Fatal("ModeAlways should be enabled even with nil out")
	}
	if Enabled(ModeNever, w, Env{"FORCE_COLOR": "1"}) {
		t.Fatal("ModeNever should be disabled")
	}
	if Enabled(ModeAuto, nil, Env{"FORCE_COLOR": "1"}) {
		t.Fatal("nil out should be disabled in auto mode")
	}
}

func TestEnvFrom(t *testing.T) {
	env := EnvFrom([]string{"FOO=bar", "BAZ", "QUX=1=2", ""})
	if env["FOO"] != "bar" {
		t.Fatalf("expected FOO=bar, got %q", env["FOO"])
	}
	if v, ok := env["BAZ"]; !ok || v != "" {
		t.Fatalf("expected BAZ empty, got %q (present=%v)", v, ok)
	}
	if env["QUX"] != "1=2" {
		t.Fatalf("expected QUX=1=2, got %q", env["QUX"])
	}
}

func TestPaint(t *testing.T) {
	got := Paint(Style{Bold: true, FG: 31}, "Hello", true)
	if want := "\x1b[1;31mHello\x1b[0m"; got != want {
		t.Fatalf("Paint produced %q, want %q", got, want)
	}
	if got := Paint(Style{FG: 31, FG256: 114}, "x", true); got != "\x1b[38;5;114mx\x1b[0m" {
		t.Fatalf("FG256 should win over FG, got %q", got)
	}
	if got := Paint(Style{}, "Hello", true); got != "Hello" {
		t.Fatalf("empty style should return original text, got %q", got)
	}
	if got := Paint(Style{Bold: true}, "Hello", false); got != "Hello" {
		t.Fatalf("disabled Paint should return original text, got %q", got)
	}
}

func TestDetectPalette(t *testing.T) {
	if p := DetectPalette(Env{"TERM": "xterm-256color"}); !p.ANSI256 || p.Light {
		t.Fatalf("unexpected palette for xterm-256color: %+v", p)
	}
	if p := DetectPalette(Env{"COLORFGBG": "0;15"}); !p.Light {
		t.Fatalf("bg=15 should be light: %+v", p)
	}
	if p := DetectPalette(Env{"COLORFGBG": "15;0", "TERM": "xterm-light"}); p.Light {
		t.Fatalf("COLORFGBG should win over TERM name: %+v", p)
	}
	if p := DetectPalette(nil); p.ANSI256 || p.Light {
		t.Fatalf("nil env should give basic dark palette: %+v", p)
	}
}

func TestPaletteStatus(t *testing.T) {
	basic := Palette{}
	if got := basic.Status("comment"); got.FG != 32 {
		t.Fatalf("comment should be green, got %+v", got)
	}
	if got := basic.Status("code"); got != (Style{}) {
		t.Fatalf("code lines should be unstyled, got %+v", got)
	}
	rich := Palette{ANSI256: true, Light: true}
	if got := rich.Status("comment"); got.FG256 != 28 {
		t.Fatalf("light 256 palette should use dark green, got %+v", got)
	}
}
