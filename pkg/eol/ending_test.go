package eol_test

import (
	"testing"

	"github.com/arthur-debert/eolmix/pkg/eol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnding_Bytes(t *testing.T) {
	assert.Equal(t, []byte{0x0D}, eol.CR.Bytes())
	assert.Equal(t, []byte{0x0A}, eol.LF.Bytes())
	assert.Equal(t, []byte{0x0D, 0x0A}, eol.CRLF.Bytes())
	assert.Nil(t, eol.Ending(0).Bytes())
	assert.Equal(t, 2, eol.CRLF.Len())
}

func TestEnding_Names(t *testing.T) {
	tests := []struct {
		ending  eol.Ending
		name    string
		glyph   string
		escaped string
	}{
		{eol.CR, "CR", "␍", `\r`},
		{eol.LF, "LF", "␊", `\n`},
		{eol.CRLF, "CRLF", "␍␊", `\r\n`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.ending.String())
			assert.Equal(t, tt.glyph, tt.ending.Glyph())
			assert.Equal(t, tt.escaped, tt.ending.Escaped())
		})
	}

	assert.Equal(t, "Ending(9)", eol.Ending(9).String())
}

func TestParseEnding(t *testing.T) {
	tests := []struct {
		in      string
		want    eol.Ending
		wantErr bool
	}{
		{"lf", eol.LF, false},
		{"LF", eol.LF, false},
		{" crlf ", eol.CRLF, false},
		{"cr", eol.CR, false},
		{"unix", eol.LF, false},
		{"dos", eol.CRLF, false},
		{"mac", eol.CR, false},
		{"nl", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := eol.ParseEnding(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "want cr, lf, crlf")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnding_TextMarshalling(t *testing.T) {
	text, err := eol.CRLF.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "CRLF", string(text))

	var e eol.Ending
	require.NoError(t, e.UnmarshalText([]byte("cr")))
	assert.Equal(t, eol.CR, e)

	_, err = eol.Ending(0).MarshalText()
	assert.Error(t, err)
	assert.Error(t, e.UnmarshalText([]byte("bogus")))
}
