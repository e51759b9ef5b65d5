package fixtures_test

import (
	"testing"

	"github.com/arthur-debert/eolmix/pkg/eol"
	"github.com/arthur-debert/eolmix/pkg/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Bytes(t *testing.T) {
	want := map[string]string{
		"f1": "Line1\rLine2\r\nLine3\r",
		"f2": "Line1\r\nLine2\r\nLine3\r",
		"f3": "Line1\rLine2\r\nLine3\r\n",
		"f4": "Line1\nLine2\r\nLine3\n",
		"f5": "Line1\r\nLine2\r\nLine3\n",
		"f6": "Line1\nLine2\r\nLine3\r\n",
		"f7": "Line1\nLine2\rLine3\n",
		"f8": "Line1\rLine2\rLine3\n",
		"f9": "Line1\nLine2\rLine3\r",
	}

	require.Len(t, fixtures.Table, 9)
	for _, f := range fixtures.Table {
		t.Run(f.Name, func(t *testing.T) {
			assert.Equal(t, want[f.Name], string(f.Bytes()))
		})
	}
}

func TestTable_ConcreteSizes(t *testing.T) {
	f1 := fixtures.Table[0]
	require.Equal(t, "f1", f1.Name)
	assert.Len(t, f1.Bytes(), 19)

	f9 := fixtures.Table[8]
	require.Equal(t, "f9", f9.Name)
	assert.Len(t, f9.Bytes(), 18)
	assert.Equal(t, []byte("Line1\nLine2\rLine3\r"), f9.Bytes())
}

func TestTable_DecodesToThreeLines(t *testing.T) {
	for _, f := range fixtures.Table {
		t.Run(f.Name, func(t *testing.T) {
			lines, seps := eol.Split(f.Bytes())
			assert.Equal(t, []string{"Line1", "Line2", "Line3"}, lines)
			assert.Equal(t, f.Separators[:], seps)
		})
	}
}

func TestTable_NothingAfterThirdSeparator(t *testing.T) {
	for _, f := range fixtures.Table {
		t.Run(f.Name, func(t *testing.T) {
			content := f.Bytes()
			suffix := "Line3" + string(f.Separators[2].Bytes())
			assert.Equal(t, suffix, string(content[len(content)-len(suffix):]))
		})
	}
}

func TestTable_Style(t *testing.T) {
	want := map[string]eol.Style{
		"f1": eol.Mac,
		"f2": eol.Mac,
		"f3": eol.PC,
		"f4": eol.PC,
		"f5": eol.PC,
		"f6": eol.PC,
		"f7": eol.Mac,
		"f8": eol.Mac,
		"f9": eol.Mac,
	}
	for _, f := range fixtures.Table {
		assert.Equal(t, want[f.Name], f.Style(), f.Name)
	}
}

func TestTable_AllMixed(t *testing.T) {
	for _, f := range fixtures.Table {
		assert.True(t, eol.Count(f.Bytes()).Mixed(), "%s should mix terminators", f.Name)
	}
}

func TestTable_NormalizesToUnix(t *testing.T) {
	for _, f := range fixtures.Table {
		assert.Equal(t, "Line1\nLine2\nLine3\n", string(eol.ToUnix(f.Bytes())), f.Name)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9"}, fixtures.Names())
}
