package cli

import (
	"fmt"

	"github.com/arthur-debert/eolmix/pkg/fixtures"
	"github.com/spf13/cobra"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [dir]",
		Short: MsgVerifyShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.Output.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			p := a.printer(cmd)

			mismatches, err := fixtures.Verify(a.fs, dir)
			if err != nil {
				return err
			}
			if len(mismatches) == 0 {
				p.Success(MsgVerifyOK, len(fixtures.Table), dir)
				return nil
			}

			bad := make(map[string]fixtures.Mismatch, len(mismatches))
			for _, m := range mismatches {
				bad[m.Name] = m
			}
			rows := make([][]string, 0, len(fixtures.Table))
			for _, f := range fixtures.Table {
				m, ok := bad[f.Name]
				if !ok {
					rows = append(rows, []string{f.Name, p.Styled("Success", MsgStatusOK), "", "", ""})
					continue
				}
				rows = append(rows, []string{
					f.Name,
					p.Styled("Error", MsgStatusMismatch),
					p.Glyphs(m.Expected),
					p.Glyphs(m.Actual),
					fmt.Sprint(m.Offset()),
				})
			}
			if err := p.Table([]string{"File", "Status", "Expected", "Actual", "First diff at"}, rows); err != nil {
				return err
			}
			return fixtures.MismatchError(mismatches)
		},
	}
}
