package eol_test

import (
	"testing"

	"github.com/arthur-debert/eolmix/pkg/eol"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLines []string
		wantSeps  []eol.Ending
	}{
		{"empty", "", nil, nil},
		{"no terminator", "Line1", []string{"Line1"}, nil},
		{
			name:      "mixed with trailing terminator",
			input:     "Line1\rLine2\r\nLine3\r",
			wantLines: []string{"Line1", "Line2", "Line3"},
			wantSeps:  []eol.Ending{eol.CR, eol.CRLF, eol.CR},
		},
		{
			name:      "unterminated last line",
			input:     "a\nb",
			wantLines: []string{"a", "b"},
			wantSeps:  []eol.Ending{eol.LF},
		},
		{
			name:      "empty lines",
			input:     "\n\r\n\r",
			wantLines: []string{"", "", ""},
			wantSeps:  []eol.Ending{eol.LF, eol.CRLF, eol.CR},
		},
		{
			name:      "lf then cr is two terminators",
			input:     "a\n\rb",
			wantLines: []string{"a", "", "b"},
			wantSeps:  []eol.Ending{eol.LF, eol.CR},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, seps := eol.Split([]byte(tt.input))
			assert.Equal(t, tt.wantLines, lines)
			assert.Equal(t, tt.wantSeps, seps)
			assert.Equal(t, tt.input, string(eol.Join(lines, seps)))
		})
	}
}

func TestNormalize(t *testing.T) {
	input := []byte("Line1\rLine2\r\nLine3\n")

	tests := []struct {
		target eol.Ending
		want   string
	}{
		{eol.LF, "Line1\nLine2\nLine3\n"},
		{eol.CRLF, "Line1\r\nLine2\r\nLine3\r\n"},
		{eol.CR, "Line1\rLine2\rLine3\r"},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, string(eol.Normalize(input, tt.target)))
		})
	}

	t.Run("to unix", func(t *testing.T) {
		assert.Equal(t, "a\nb", string(eol.ToUnix([]byte("a\r\nb"))))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := eol.Normalize(input, eol.CRLF)
		assert.Equal(t, once, eol.Normalize(once, eol.CRLF))
	})
}

func TestVisualize(t *testing.T) {
	input := []byte("Line1\nLine2\rLine3\r")

	assert.Equal(t, "Line1␊Line2␍Line3␍", eol.Visualize(input, false))
	assert.Equal(t, "Line1␊\nLine2␍\nLine3␍\n", eol.Visualize(input, true))
}
