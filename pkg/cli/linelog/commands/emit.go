package commands

import (
	"fmt"
	"strings"

	"github.com/kralicky/linelog/pkg/logger"
	"github.com/spf13/cobra"
)

func BuildEmitCmd() *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "emit [flags] <message...>",
		Short: "Emit a single log record.",
		Long: `
Emits a single record at the given level. The record is dropped if the level
is below the configured filter ($LOGLEVEL or --log-level, default error).
`[1:],
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := loggerFromCmd(cmd)
			if err != nil {
				return err
			}
			lvl, err := logger.ParseLevel(level)
			if err != nil {
				return err
			}
			if lvl >= logger.LevelOff {
				return fmt.Errorf("%w: %q is a filter, not a record level", logger.ErrInvalidLevel, level)
			}
			lg.Log(cmd.Context(), lvl, strings.Join(args, " "))
			return nil
		},
	}
	cmd.Flags().StringVarP(&level, "level", "l", "info", "level of the record (trace, debug, info, warn, error)")
	return cmd
}
