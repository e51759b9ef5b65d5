// Package topics provides topic-based help for the eolmix CLI.
// Topics are markdown files embedded in the binary and are reachable
// through `eolmix help <topic>`.
package topics

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed content/*.md
var content embed.FS

// Topic represents a help topic
type Topic struct {
	Name    string
	Content string
}

// Renderer writes a topic's markdown
type Renderer interface {
	Render(w io.Writer, markdown string) error
}

// PlainRenderer writes topics unchanged
type PlainRenderer struct{}

func (PlainRenderer) Render(w io.Writer, markdown string) error {
	_, err := io.WriteString(w, markdown)
	return err
}

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	renderer     Renderer
}

// New loads the embedded topics
func New(renderer Renderer) (*TopicManager, error) {
	return NewFromFS(content, "content", renderer)
}

// NewFromFS loads every .md file directly under dir in fsys
func NewFromFS(fsys fs.FS, dir string, renderer Renderer) (*TopicManager, error) {
	if renderer == nil {
		renderer = PlainRenderer{}
	}
	tm := &TopicManager{
		topics:   make(map[string]*Topic),
		renderer: renderer,
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read topic %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		tm.topics[name] = &Topic{Name: name, Content: string(data)}
	}
	return tm, nil
}

// GetTopic retrieves a topic by name
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	topic, exists := tm.topics[name]
	return topic, exists
}

// ListTopics returns all available topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show renders the named topic to w
func (tm *TopicManager) Show(w io.Writer, name string) error {
	topic, ok := tm.GetTopic(name)
	if !ok {
		return fmt.Errorf("unknown topic %q (available: %s)", name, strings.Join(tm.ListTopics(), ", "))
	}
	return tm.renderer.Render(w, topic.Content)
}

// Install replaces the root command's help command with one that also
// knows about topics.
func (tm *TopicManager) Install(rootCmd *cobra.Command) {
	tm.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return nil
			}

			if args[0] == "topics" {
				fmt.Fprintln(out, "Available help topics:")
				for _, name := range tm.ListTopics() {
					fmt.Fprintf(out, "  %s\n", name)
				}
				fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", rootCmd.Name())
				return nil
			}

			if _, ok := tm.GetTopic(args[0]); ok {
				return tm.Show(out, args[0])
			}

			// Not a topic: resolve as a command path
			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				tm.originalHelp(rootCmd, args)
				return nil
			}
			tm.originalHelp(target, args)
			return nil
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)
}
