package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsEmbeddedTopics(t *testing.T) {
	tm, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"config", "detection", "fixtures", "normalize"}, tm.ListTopics())

	topic, ok := tm.GetTopic("fixtures")
	require.True(t, ok)
	assert.Contains(t, topic.Content, "| f9   | LF        | CR        | CR        | Mac      |")
}

func TestNewFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/alpha.md":    {Data: []byte("# Alpha\n")},
		"docs/notes.txt":   {Data: []byte("ignored")},
		"docs/nested/b.md": {Data: []byte("# nested, ignored\n")},
		"docs/option-x.md": {Data: []byte("# X\n")},
	}

	tm, err := NewFromFS(fsys, "docs", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "option-x"}, tm.ListTopics())

	_, err = NewFromFS(fsys, "missing", nil)
	assert.Error(t, err)
}

func TestGetTopic_FlagStyle(t *testing.T) {
	tm, err := New(nil)
	require.NoError(t, err)

	_, ok := tm.GetTopic("--normalize")
	assert.True(t, ok)
	_, ok = tm.GetTopic("nope")
	assert.False(t, ok)
}

func TestShow(t *testing.T) {
	tm, err := New(PlainRenderer{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tm.Show(&buf, "detection"))
	assert.Contains(t, buf.String(), "# Detection")

	err = tm.Show(&buf, "unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixtures")
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "eolmix", Short: "root"}
	root.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Write the fixture files",
		Run:   func(*cobra.Command, []string) {},
	})
	return root
}

func TestInstall(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"topic list", []string{"help", "topics"}, "Available help topics:"},
		{"topic", []string{"help", "fixtures"}, "# Fixtures"},
		{"command", []string{"help", "generate"}, "Write the fixture files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRoot()
			tm, err := New(nil)
			require.NoError(t, err)
			tm.Install(root)

			var buf bytes.Buffer
			root.SetOut(&buf)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
