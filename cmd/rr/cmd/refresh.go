package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-estimate every tracked item now",
		Long: "Triggers an immediate refresh run on the server instead of waiting for\n" +
			"the next scheduled one. Stops early if the daily marketplace quota runs out.",
		Example: `  rr refresh`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			refreshed, err := c.TriggerRefresh(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]int{"items_refreshed": refreshed})
			}
			fmt.Printf("Refreshed %d items\n", refreshed)
			return nil
		},
	}
}
