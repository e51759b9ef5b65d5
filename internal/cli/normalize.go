package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/arthur-debert/eolmix/pkg/eol"
	"github.com/arthur-debert/eolmix/pkg/errors"
	"github.com/arthur-debert/eolmix/pkg/filesystem"
	"github.com/arthur-debert/eolmix/pkg/logging"
	"github.com/spf13/cobra"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var (
		to     string
		backup bool
	)
	cmd := &cobra.Command{
		Use:     "normalize FILE...",
		Short:   MsgNormalizeShort,
		Example: MsgNormalizeExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.normalize")
			p := a.printer(cmd)

			targetName := a.cfg.Normalize.Target
			if cmd.Flags().Changed("to") {
				targetName = to
			}
			auto := strings.EqualFold(targetName, eol.AutoTarget)
			var target eol.Ending
			if !auto {
				var err error
				target, err = eol.ParseEnding(targetName)
				if err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, "invalid --to")
				}
			}
			keepBackup := a.cfg.Normalize.Backup
			if cmd.Flags().Changed("backup") {
				keepBackup = backup
			}

			for _, name := range args {
				data, err := filesystem.ReadRaw(a.fs, name)
				if err != nil {
					return err
				}
				style := eol.Detect(data)
				want := target
				if auto {
					want = style.Ending()
				}
				normalized := eol.Normalize(data, want)
				if bytes.Equal(data, normalized) {
					p.Println(p.Styled("Muted", fmt.Sprintf(MsgAlreadyNormal, name, want)))
					continue
				}
				if err := filesystem.Replace(a.fs, name, normalized, keepBackup); err != nil {
					return err
				}
				logger.Info().
					Str("file", name).
					Str("from", style.String()).
					Str("to", want.String()).
					Bool("backup", keepBackup).
					Msg("Normalized file")
				p.Success(MsgNormalized, name, want)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", MsgFlagTo)
	cmd.Flags().BoolVar(&backup, "backup", false, MsgFlagBackup)
	return cmd
}
