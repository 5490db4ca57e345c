package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kralicky/linelog/pkg/logger"
	"github.com/spf13/cobra"
)

func BuildLevelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Show all levels and how they are rendered.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := loggerFromCmd(cmd)
			if err != nil {
				return err
			}
			palette := lg.LineHandler().Palette()
			tab := table.NewWriter()
			tab.AppendHeader(table.Row{"LEVEL", "VALUE", "LABEL", "ENABLED"})
			for _, l := range logger.Levels {
				tab.AppendRow(table.Row{
					logger.LevelName(l),
					int(l),
					palette.Label(l),
					l >= lg.Level(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), tab.Render())
			return nil
		},
	}
	return cmd
}
