package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// newCmdRuns returns a command that lists recorded deployment runs.
func newCmdRuns() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List recorded deployment runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbURL, _ := cmd.Flags().GetString("db-url")
			repo, err := openRunRepository(dbURL)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			runs, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLOCATION\tMODEL\tSTATUS\tSTARTED\tELAPSED")
			for _, r := range runs {
				elapsed := "-"
				if !r.FinishedAt.IsZero() {
					elapsed = r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.DeploymentName, r.Location, r.ModelName, r.Status,
					r.StartedAt.Local().Format(time.RFC3339), elapsed)
			}
			return w.Flush()
		},
	}
}
