package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelcraft/internal/deps"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the external tools the pipeline depends on",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = status.Detail
					missing++
				}
				rows = append(rows, []string{status.Name, status.Command, state})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Tool", "Command", "Status"}, rows))
			if missing > 0 {
				return fmt.Errorf("%d required tool(s) missing", missing)
			}
			return nil
		},
	}
}
