package commands

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/kralicky/linelog/pkg/logger"
	"github.com/spf13/cobra"
)

func BuildDemoCmd() *cobra.Command {
	var workers int
	var count int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Emit sample records at every level.",
		Long: fmt.Sprintf(`
Emits one record at each level, from trace to error, followed by records
logged concurrently from several goroutines through the same logger.

Records below the configured filter are dropped; to see all of them, run:
  $ LOGLEVEL=trace %[1]s demo
`[1:], os.Args[0]),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 0 || count < 0 {
				return fmt.Errorf("--workers and --count must not be negative")
			}
			lg, err := loggerFromCmd(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			levels := slices.Clone(logger.Levels)
			slices.Reverse(levels)
			for _, l := range levels {
				lg.Log(ctx, l, fmt.Sprintf("this is a %s record", logger.LevelName(l)))
			}

			var wg sync.WaitGroup
			wg.Add(workers)
			for i := 0; i < workers; i++ {
				wlg := lg.With("worker", i)
				go func() {
					defer wg.Done()
					for j := 0; j < count; j++ {
						wlg.InfoContext(ctx, fmt.Sprintf("record %d", j))
					}
				}()
			}
			wg.Wait()
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "number of concurrent goroutines")
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of records per goroutine")
	return cmd
}
