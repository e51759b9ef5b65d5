// Package cli builds the eolmix command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/eolmix/internal/version"
	"github.com/arthur-debert/eolmix/pkg/config"
	"github.com/arthur-debert/eolmix/pkg/filesystem"
	"github.com/arthur-debert/eolmix/pkg/logging"
	"github.com/arthur-debert/eolmix/pkg/topics"
	"github.com/arthur-debert/eolmix/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand of one root command
type app struct {
	fs         afero.Fs
	verbosity  int
	configPath string
	color      string
	overrides  []string
	cfg        *config.Config
}

// printer returns a printer for the command's stdout honouring --color
func (a *app) printer(cmd *cobra.Command) *ui.Printer {
	format, err := ui.ParseFormat(a.color)
	if err != nil {
		format = ui.FormatAuto
	}
	return ui.NewPrinter(cmd.OutOrStdout(), format)
}

// markdownRenderer renders help topics through ui.Printer
type markdownRenderer struct {
	app *app
}

func (r markdownRenderer) Render(w io.Writer, markdown string) error {
	format, err := ui.ParseFormat(r.app.color)
	if err != nil {
		format = ui.FormatAuto
	}
	return ui.NewPrinter(w, format).Markdown(markdown)
}

// NewRootCmd creates the root command operating on the OS filesystem
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithFS(filesystem.NewOS())
}

// NewRootCmdWithFS creates the root command with every file operation
// going through fsys
func NewRootCmdWithFS(fsys afero.Fs) *cobra.Command {
	initTemplateFormatting()

	a := &app{fs: fsys}

	rootCmd := &cobra.Command{
		Use:     "eolmix",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ui.ParseFormat(a.color); err != nil {
				return fmt.Errorf("invalid --color value: %w", err)
			}
			overrides, err := config.ParseOverrides(a.overrides)
			if err != nil {
				return err
			}
			cfg, err := config.Load(config.LoadOptions{Path: a.configPath, Overrides: overrides, FS: a.fs})
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.SetupLoggerWithFile(a.verbosity, cfg.Logging.File)
			log.Debug().
				Str("command", cmd.Name()).
				Str("config", cfg.Source).
				Msg("Command started")
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "auto", MsgFlagColor)
	rootCmd.PersistentFlags().StringArrayVar(&a.overrides, "set", nil, MsgFlagSet)

	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	rootCmd.AddCommand(newDetectCmd(a))
	rootCmd.AddCommand(newNormalizeCmd(a))
	rootCmd.AddCommand(newManifestCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	tm, err := topics.New(markdownRenderer{app: a})
	if err == nil {
		rootCmd.AddCommand(newExplainCmd(tm))
		tm.Install(rootCmd)
	} else {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				_, err := io.WriteString(out, config.DefaultContent())
				return err
			}
			source := a.cfg.Source
			if source == "" {
				source = "(defaults only)"
			}
			p := a.printer(cmd)
			return p.Table([]string{"Key", "Value"}, [][]string{
				{"source", source},
				{"output.dir", a.cfg.Output.Dir},
				{"output.file_mode", fmt.Sprintf("%#o", a.cfg.Output.FileMode)},
				{"normalize.target", a.cfg.Normalize.Target},
				{"normalize.backup", fmt.Sprint(a.cfg.Normalize.Backup)},
				{"manifest.format", a.cfg.Manifest.Format},
				{"logging.file", a.cfg.Logging.File},
			})
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
