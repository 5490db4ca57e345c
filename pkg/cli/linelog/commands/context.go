package commands

import (
	"errors"

	"github.com/kralicky/linelog/pkg/logger"
	"github.com/spf13/cobra"
)

var errNoLogger = errors.New("logger not initialized (root command not configured)")

func loggerFromCmd(cmd *cobra.Command) (*logger.Logger, error) {
	lg, ok := logger.FromContext(cmd.Context())
	if !ok {
		return nil, errNoLogger
	}
	return lg, nil
}
