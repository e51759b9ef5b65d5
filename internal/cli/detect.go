package cli

import (
	"fmt"

	"github.com/arthur-debert/eolmix/pkg/eol"
	"github.com/arthur-debert/eolmix/pkg/filesystem"
	"github.com/arthur-debert/eolmix/pkg/logging"
	"github.com/spf13/cobra"
)

func newDetectCmd(a *app) *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "detect FILE...",
		Short: MsgDetectShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.detect")
			p := a.printer(cmd)

			rows := make([][]string, 0, len(args))
			contents := make([][]byte, 0, len(args))
			for _, name := range args {
				data, err := filesystem.ReadRaw(a.fs, name)
				if err != nil {
					return err
				}
				style := eol.Detect(data)
				census := eol.Count(data)
				logger.Debug().
					Str("file", name).
					Str("style", style.String()).
					Int("cr", census.CR).
					Int("lf", census.LF).
					Int("crlf", census.CRLF).
					Msg("Detected line endings")

				mixed := "no"
				if census.Mixed() {
					mixed = p.Styled("Warning", "yes")
				}
				row := []string{name, style.String()}
				for _, e := range eol.Endings {
					row = append(row, fmt.Sprint(census.Of(e)))
				}
				rows = append(rows, append(row, fmt.Sprint(census.Total()), mixed))
				contents = append(contents, data)
			}

			header := []string{"File", "Style"}
			for _, e := range eol.Endings {
				header = append(header, e.String())
			}
			header = append(header, "Total", "Mixed")
			if err := p.Table(header, rows); err != nil {
				return err
			}
			if show {
				for i, name := range args {
					p.Header("%s:", name)
					p.Println(p.Glyphs(contents[i]))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, MsgFlagShow)
	return cmd
}
