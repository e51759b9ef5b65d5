package eol

import (
	"fmt"
	"strings"
)

// Ending is a single line terminator.
type Ending int

const (
	CR Ending = iota + 1
	LF
	CRLF
)

var (
	crBytes   = []byte{'\r'}
	lfBytes   = []byte{'\n'}
	crlfBytes = []byte{'\r', '\n'}
)

// Endings lists every terminator in a stable order.
var Endings = []Ending{CR, LF, CRLF}

// Bytes returns the raw terminator bytes. The slice must not be modified.
func (e Ending) Bytes() []byte {
	switch e {
	case CR:
		return crBytes
	case LF:
		return lfBytes
	case CRLF:
		return crlfBytes
	}
	return nil
}

// Len is the number of bytes the terminator occupies.
func (e Ending) Len() int {
	return len(e.Bytes())
}

func (e Ending) String() string {
	switch e {
	case CR:
		return "CR"
	case LF:
		return "LF"
	case CRLF:
		return "CRLF"
	}
	return fmt.Sprintf("Ending(%d)", int(e))
}

// Glyph renders the terminator with the Unicode control pictures
// (U+240D and U+240A).
func (e Ending) Glyph() string {
	switch e {
	case CR:
		return "␍"
	case LF:
		return "␊"
	case CRLF:
		return "␍␊"
	}
	return "?"
}

// Escaped renders the terminator as a Go escape sequence.
func (e Ending) Escaped() string {
	switch e {
	case CR:
		return `\r`
	case LF:
		return `\n`
	case CRLF:
		return `\r\n`
	}
	return ""
}

// AutoTarget names the normalization target that keeps each buffer's own
// detected style.
const AutoTarget = "auto"

// ParseEnding accepts "cr", "lf" or "crlf" in any case.
func ParseEnding(s string) (Ending, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cr", "mac":
		return CR, nil
	case "lf", "unix":
		return LF, nil
	case "crlf", "pc", "dos":
		return CRLF, nil
	}
	names := make([]string, len(Endings))
	for i, e := range Endings {
		names[i] = strings.ToLower(e.String())
	}
	return 0, fmt.Errorf("unknown line ending %q (want %s)", s, strings.Join(names, ", "))
}

// MarshalText encodes the ending by name so manifests stay readable.
func (e Ending) MarshalText() ([]byte, error) {
	if e.Bytes() == nil {
		return nil, fmt.Errorf("invalid line ending %d", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (e *Ending) UnmarshalText(text []byte) error {
	parsed, err := ParseEnding(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
