// Package manifest exports the fixture table in machine-readable form so
// other test suites can assert against the same bytes eolmix writes.
package manifest

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/eolmix/pkg/errors"
	"github.com/arthur-debert/eolmix/pkg/fixtures"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"
)

var writers = map[Format]func(io.Writer, *Manifest) error{
	FormatJSON: writeJSON,
	FormatYAML: writeYAML,
	FormatTOML: writeTOML,
	FormatXML:  writeXML,
}

// Formats lists the supported encodings, sorted
func Formats() []string {
	out := make([]string, 0, len(writers))
	for f := range writers {
		out = append(out, string(f))
	}
	sort.Strings(out)
	return out
}

// ParseFormat validates a user supplied format name. "yml" is accepted
// as an alias for yaml.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	if _, ok := writers[f]; !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown manifest format %q (want one of %s)",
			s, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Entry describes one fixture file
type Entry struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Lines      []string `json:"lines" yaml:"lines" toml:"lines"`
	Separators []string `json:"separators" yaml:"separators" toml:"separators"`
	Style      string   `json:"style" yaml:"style" toml:"style"`
	Size       int      `json:"size" yaml:"size" toml:"size"`
	Hex        string   `json:"hex" yaml:"hex" toml:"hex"`
	// Literal is the content as a Go/C string literal body, e.g. Line1\rLine2
	Literal    string   `json:"literal" yaml:"literal" toml:"literal"`
}

// Manifest is the complete export
type Manifest struct {
	Fixtures []Entry `json:"fixtures" yaml:"fixtures" toml:"fixtures"`
}

// Build describes every entry of fixtures.Table
func Build() *Manifest {
	m := &Manifest{Fixtures: make([]Entry, 0, len(fixtures.Table))}
	for _, f := range fixtures.Table {
		content := f.Bytes()
		seps := make([]string, len(f.Separators))
		var literal strings.Builder
		for i, s := range f.Separators {
			seps[i] = s.String()
			literal.WriteString(fixtures.Lines[i])
			literal.WriteString(s.Escaped())
		}
		m.Fixtures = append(m.Fixtures, Entry{
			Name:       f.Name,
			Lines:      append([]string(nil), fixtures.Lines[:]...),
			Separators: seps,
			Style:      f.Style().String(),
			Size:       len(content),
			Hex:        hex.EncodeToString(content),
			Literal:    literal.String(),
		})
	}
	return m
}

// Write encodes the manifest to w
func Write(w io.Writer, format Format) error {
	write, ok := writers[format]
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "unknown manifest format %q", format)
	}
	if err := write(w, Build()); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "encode %s manifest", format)
	}
	return nil
}

func writeJSON(w io.Writer, m *Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func writeYAML(w io.Writer, m *Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}

func writeTOML(w io.Writer, m *Manifest) error {
	return toml.NewEncoder(w).Encode(m)
}

func writeXML(w io.Writer, m *Manifest) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("fixtures")
	for _, e := range m.Fixtures {
		el := root.CreateElement("fixture")
		el.CreateAttr("name", e.Name)
		el.CreateAttr("style", e.Style)
		el.CreateAttr("size", strconv.Itoa(e.Size))
		for i, line := range e.Lines {
			l := el.CreateElement("line")
			l.CreateAttr("separator", e.Separators[i])
			l.SetText(line)
		}
		el.CreateElement("hex").SetText(e.Hex)
		el.CreateElement("literal").SetText(e.Literal)
	}
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	return nil
}
