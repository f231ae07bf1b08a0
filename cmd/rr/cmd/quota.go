package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "quota",
		Short:   "Show marketplace API quota usage",
		Example: `  rr quota`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			q, err := c.GetQuota(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
			tw.writef("Used Today:\t%d\n", q.DailyUsed)
			tw.writef("Remaining:\t%d\n", q.Remaining)
			tw.writef("Resets At:\t%s\n", q.ResetAt.Local().Format("2006-01-02 15:04"))
			if q.Remote != nil {
				tw.writef("\n")
				tw.writef("Remote Limit:\t%d\n", q.Remote.Limit)
				tw.writef("Remote Remaining:\t%d\n", q.Remote.Remaining)
				tw.writef("Remote Resets At:\t%s\n", q.Remote.ResetAt.Local().Format("2006-01-02 15:04"))
			}
			return tw.finish()
		},
	}
}
