package cli

import (
	"fmt"

	"github.com/arthur-debert/eolmix/pkg/eol"
	"github.com/arthur-debert/eolmix/pkg/errors"
	"github.com/arthur-debert/eolmix/pkg/fixtures"
	"github.com/arthur-debert/eolmix/pkg/logging"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		dryRun  bool
		parents bool
	)
	cmd := &cobra.Command{
		Use:     "generate [dir]",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.Output.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			p := a.printer(cmd)

			if dryRun {
				rows := make([][]string, 0, len(fixtures.Table))
				for _, f := range fixtures.Table {
					rows = append(rows, []string{f.Name, p.Glyphs(f.Bytes()), fmt.Sprint(len(f.Bytes()))})
				}
				if err := p.Table([]string{"File", "Content", "Bytes"}, rows); err != nil {
					return err
				}
				p.Warn(MsgDryRunNotice)
				return nil
			}

			if parents {
				if err := a.fs.MkdirAll(dir, 0755); err != nil {
					return errors.Wrapf(err, errors.ErrFileCreate, "cannot create directory %s", dir)
				}
			}

			g := fixtures.NewGenerator(a.fs, dir,
				fixtures.WithFileMode(a.cfg.Mode()),
				fixtures.WithLogger(logging.GetLogger("cmd.generate")))
			written, err := g.Generate(cmd.Context())
			if err != nil {
				return err
			}

			p.Success(MsgGenerated, len(written), dir)
			if a.verbosity > 0 {
				for i, path := range written {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", path,
						eol.Visualize(fixtures.Table[i].Bytes(), false))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, MsgFlagParents)
	return cmd
}
