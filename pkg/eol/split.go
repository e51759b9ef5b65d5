package eol

import (
	"bytes"
	"strings"
)

// Split breaks b into lines and the terminator that ended each one.
// If b does not end with a terminator the final line is returned with no
// matching separator, so len(seps) is len(lines) or len(lines)-1.
func Split(b []byte) (lines []string, seps []Ending) {
	start := 0
	for i := 0; i < len(b); i++ {
		var e Ending
		switch b[i] {
		case '\r':
			if i+1 < len(b) && b[i+1] == '\n' {
				e = CRLF
			} else {
				e = CR
			}
		case '\n':
			e = LF
		default:
			continue
		}
		lines = append(lines, string(b[start:i]))
		seps = append(seps, e)
		i += e.Len() - 1
		start = i + 1
	}
	if start < len(b) {
		lines = append(lines, string(b[start:]))
	}
	return lines, seps
}

// Join is the inverse of Split: it interleaves lines with seps. Extra
// lines are appended without a terminator.
func Join(lines []string, seps []Ending) []byte {
	var buf bytes.Buffer
	for i, line := range lines {
		buf.WriteString(line)
		if i < len(seps) {
			buf.Write(seps[i].Bytes())
		}
	}
	return buf.Bytes()
}

// Normalize rewrites every terminator in b as target.
func Normalize(b []byte, target Ending) []byte {
	out := make([]byte, 0, len(b))
	tb := target.Bytes()
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\r':
			if i+1 < len(b) && b[i+1] == '\n' {
				i++
			}
			out = append(out, tb...)
		case '\n':
			out = append(out, tb...)
		default:
			out = append(out, b[i])
		}
	}
	return out
}

// ToUnix converts every terminator to LF.
func ToUnix(b []byte) []byte {
	return Normalize(b, LF)
}

// Visualize replaces terminators with their glyphs, keeping a real newline
// after each one when multiline is set.
func Visualize(b []byte, multiline bool) string {
	lines, seps := Split(b)
	var sb strings.Builder
	for i, line := range lines {
		sb.WriteString(line)
		if i < len(seps) {
			sb.WriteString(seps[i].Glyph())
			if multiline {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
