package fixtures

import (
	"bytes"

	"github.com/arthur-debert/eolmix/pkg/eol"
)

// Lines is the text content shared by every fixture.
var Lines = [3]string{"Line1", "Line2", "Line3"}

// Fixture describes one generated file.
type Fixture struct {
	Name       string
	Separators [3]eol.Ending
}

// Table is the complete fixture set, in generation order.
var Table = []Fixture{
	{Name: "f1", Separators: [3]eol.Ending{eol.CR, eol.CRLF, eol.CR}},
	{Name: "f2", Separators: [3]eol.Ending{eol.CRLF, eol.CRLF, eol.CR}},
	{Name: "f3", Separators: [3]eol.Ending{eol.CR, eol.CRLF, eol.CRLF}},
	{Name: "f4", Separators: [3]eol.Ending{eol.LF, eol.CRLF, eol.LF}},
	{Name: "f5", Separators: [3]eol.Ending{eol.CRLF, eol.CRLF, eol.LF}},
	{Name: "f6", Separators: [3]eol.Ending{eol.LF, eol.CRLF, eol.CRLF}},
	{Name: "f7", Separators: [3]eol.Ending{eol.LF, eol.CR, eol.LF}},
	{Name: "f8", Separators: [3]eol.Ending{eol.CR, eol.CR, eol.LF}},
	{Name: "f9", Separators: [3]eol.Ending{eol.LF, eol.CR, eol.CR}},
}

// Chunks returns the write sequence for the fixture: each line followed by
// its separator.
func (f Fixture) Chunks() [][]byte {
	chunks := make([][]byte, 0, 2*len(Lines))
	for i, line := range Lines {
		chunks = append(chunks, []byte(line), f.Separators[i].Bytes())
	}
	return chunks
}

// Bytes returns the exact file content.
func (f Fixture) Bytes() []byte {
	return bytes.Join(f.Chunks(), nil)
}

// Style is what eol.Detect reports for this fixture.
func (f Fixture) Style() eol.Style {
	return eol.Detect(f.Bytes())
}

// Names lists the fixture file names in generation order.
func Names() []string {
	names := make([]string, len(Table))
	for i, f := range Table {
		names[i] = f.Name
	}
	return names
}
