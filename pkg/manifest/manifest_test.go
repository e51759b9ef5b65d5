package manifest_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/eolmix/pkg/errors"
	"github.com/arthur-debert/eolmix/pkg/fixtures"
	"github.com/arthur-debert/eolmix/pkg/manifest"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuild(t *testing.T) {
	m := manifest.Build()
	require.Len(t, m.Fixtures, 9)

	first := m.Fixtures[0]
	assert.Equal(t, "f1", first.Name)
	assert.Equal(t, []string{"Line1", "Line2", "Line3"}, first.Lines)
	assert.Equal(t, []string{"CR", "CRLF", "CR"}, first.Separators)
	assert.Equal(t, "Mac", first.Style)
	assert.Equal(t, 19, first.Size)
	assert.Equal(t, `Line1\rLine2\r\nLine3\r`, first.Literal)
	assert.Equal(t, `Line1\nLine2\rLine3\r`, m.Fixtures[8].Literal)

	raw, err := hex.DecodeString(first.Hex)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Table[0].Bytes(), raw)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    manifest.Format
		wantErr bool
	}{
		{"json", manifest.FormatJSON, false},
		{"YAML", manifest.FormatYAML, false},
		{"yml", manifest.FormatYAML, false},
		{" toml ", manifest.FormatTOML, false},
		{"xml", manifest.FormatXML, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := manifest.ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"json", "toml", "xml", "yaml"}, manifest.Formats())
}

func TestWrite_DecodesBack(t *testing.T) {
	decoders := map[manifest.Format]func([]byte, *manifest.Manifest) error{
		manifest.FormatJSON: func(b []byte, m *manifest.Manifest) error { return json.Unmarshal(b, m) },
		manifest.FormatYAML: func(b []byte, m *manifest.Manifest) error { return yaml.Unmarshal(b, m) },
		manifest.FormatTOML: func(b []byte, m *manifest.Manifest) error { return toml.Unmarshal(b, m) },
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, manifest.Write(&buf, format))

			var got manifest.Manifest
			require.NoError(t, decode(buf.Bytes(), &got))
			assert.Equal(t, manifest.Build(), &got)
		})
	}
}

func TestWrite_XML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, manifest.Write(&buf, manifest.FormatXML))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	items := doc.FindElements("/fixtures/fixture")
	require.Len(t, items, 9)

	f9 := items[8]
	assert.Equal(t, "f9", f9.SelectAttrValue("name", ""))
	assert.Equal(t, "18", f9.SelectAttrValue("size", ""))

	lines := f9.SelectElements("line")
	require.Len(t, lines, 3)
	assert.Equal(t, "Line2", lines[1].Text())
	assert.Equal(t, "CR", lines[1].SelectAttrValue("separator", ""))
	assert.Equal(t, `Line1\nLine2\rLine3\r`, f9.SelectElement("literal").Text())
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := manifest.Write(&bytes.Buffer{}, manifest.Format("ini"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
