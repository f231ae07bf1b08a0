package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Inspect scheduled background jobs",
	}
	cmd.AddCommand(jobsListCmd())
	cmd.AddCommand(jobsHistoryCmd())
	return cmd
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "Show the latest run of each scheduled job",
		Example: `  rr jobs list`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			runs, err := c.ListJobs(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			return printJobRunsTable(runs)
		},
	}
}

func jobsHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "history <job-name>",
		Short:   "Show the run history for one job",
		Example: `  rr jobs history refresh`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			runs, err := c.GetJobHistory(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			return printJobRunsTable(runs)
		},
	}
}
