package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/eolmix/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_TextIsUnstyled(t *testing.T) {
	var buf bytes.Buffer
	require.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(&buf))
	p := ui.NewPrinter(&buf, ui.FormatAuto)

	p.Success("wrote %d files", 9)
	p.Warn("careful")
	p.Header("Fixtures")
	p.Println("plain")

	assert.Equal(t, "wrote 9 files\ncareful\nFixtures\nplain\n", buf.String())
}

func TestPrinter_Glyphs(t *testing.T) {
	p := ui.NewPrinter(&bytes.Buffer{}, ui.FormatText)
	assert.Equal(t, "Line1␍Line2␍␊Line3␍", p.Glyphs([]byte("Line1\rLine2\r\nLine3\r")))
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewPrinter(&buf, ui.FormatText)

	require.NoError(t, p.Table([]string{"File", "Style"}, [][]string{
		{"f1", "Mac"},
		{"f4", "PC"},
	}))

	out := buf.String()
	assert.Contains(t, out, "File")
	assert.Contains(t, out, "f4")
	assert.Contains(t, out, "PC")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrinter_MarkdownText(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewPrinter(&buf, ui.FormatText)

	require.NoError(t, p.Markdown("# Title\n\nbody\n"))
	assert.Equal(t, "# Title\n\nbody\n", buf.String())
}

func TestPrinter_MarkdownTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewPrinter(&buf, ui.FormatTerminal)

	require.NoError(t, p.Markdown("# Title\n\nbody text\n"))
	assert.Contains(t, buf.String(), "body text")
}

func TestStyles(t *testing.T) {
	p := ui.NewPrinter(&bytes.Buffer{}, ui.FormatTerminal)
	for _, name := range []string{"Header", "Success", "Error", "Warning", "Muted", "CR", "LF", "CRLF", "Nope"} {
		assert.Contains(t, p.Styled(name, "text"), "text", name)
	}

	assert.Error(t, ui.LoadStylesFromData([]byte("colors: [")))
}
