package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/eolmix/pkg/eol"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Printer writes command output in a single resolved format
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter resolves format against out and returns a printer for it
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{out: out, format: format.Resolve(out)}
}

// Styled renders s with the named style on terminals and unchanged otherwise
func (p *Printer) Styled(style, s string) string {
	if p.format != FormatTerminal {
		return s
	}
	return GetStyle(style).Render(s)
}

// Println writes a plain line
func (p *Printer) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

// Success writes a line in the Success style
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.Styled("Success", fmt.Sprintf(format, args...)))
}

// Warn writes a line in the Warning style
func (p *Printer) Warn(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.Styled("Warning", fmt.Sprintf(format, args...)))
}

// Header writes a line in the Header style
func (p *Printer) Header(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.Styled("Header", fmt.Sprintf(format, args...)))
}

// Glyphs renders b with each terminator shown as its control picture,
// coloured per kind on terminals.
func (p *Printer) Glyphs(b []byte) string {
	lines, seps := eol.Split(b)
	var sb strings.Builder
	for i, line := range lines {
		sb.WriteString(line)
		if i < len(seps) {
			sb.WriteString(p.Styled(seps[i].String(), seps[i].Glyph()))
		}
	}
	return sb.String()
}

// Table writes rows under header. Terminal output uses pterm's boxed
// table; text output is the same table without colour codes.
func (p *Printer) Table(header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	if p.format != FormatTerminal {
		rendered = pterm.RemoveColorFromString(rendered)
	}
	_, err = fmt.Fprintln(p.out, rendered)
	return err
}

// Markdown renders md with glamour on terminals and writes it raw otherwise.
// A glamour failure falls back to the raw text.
func (p *Printer) Markdown(md string) error {
	out := md
	if p.format == FormatTerminal {
		if rendered, err := renderGlamour(md); err == nil {
			out = rendered
		}
	}
	_, err := io.WriteString(p.out, out)
	return err
}

func renderGlamour(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
