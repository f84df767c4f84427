package editor

// Position は 0 始まりの行番号と、行内の 0 始まりの文字（rune）位置を表します。
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Before reports whether p comes strictly before o.
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Character < o.Character
}

// Range は Start から End までの半開区間です。
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Selection はエディタ上の選択範囲です。
type Selection = Range

// TextLine は 1 行分のテキストとその範囲（改行を含まない）を保持します。
type TextLine struct {
	Text  string
	Range Range
}

// Edit は 1 つの範囲置換です。
type Edit struct {
	Range Range  `json:"range"`
	Text  string `json:"text"`
}

// EOL は文書の改行コードです。
type EOL int

const (
	LF EOL = iota
	CRLF
)

func (e EOL) String() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// Name returns the conventional short name of the line ending.
func (e EOL) Name() string {
	if e == CRLF {
		return "crlf"
	}
	return "lf"
}
