package cli

import (
	"github.com/arthur-debert/eolmix/pkg/topics"
	"github.com/spf13/cobra"
)

func newExplainCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:       "explain [topic]",
		Short:     MsgExplainShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: tm.ListTopics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "fixtures"
			if len(args) == 1 {
				name = args[0]
			}
			return tm.Show(cmd.OutOrStdout(), name)
		},
	}
}
