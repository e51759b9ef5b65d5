package cli

import (
	"bytes"

	"github.com/arthur-debert/eolmix/pkg/filesystem"
	"github.com/arthur-debert/eolmix/pkg/manifest"
	"github.com/spf13/cobra"
)

func newManifestCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: MsgManifestShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Manifest.Format
			if cmd.Flags().Changed("format") {
				name = format
			}
			f, err := manifest.ParseFormat(name)
			if err != nil {
				return err
			}

			if output == "" {
				return manifest.Write(cmd.OutOrStdout(), f)
			}
			var buf bytes.Buffer
			if err := manifest.Write(&buf, f); err != nil {
				return err
			}
			return filesystem.WriteExact(a.fs, output, a.cfg.Mode(), buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}
