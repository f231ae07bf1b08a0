package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage recent search history",
	}
	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyClearCmd())
	return cmd
}

func historyListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List recent searches",
		Example: `  rr history list --limit 20`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			records, err := c.ListHistory(context.Background(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(records)
			}
			return printHistoryTable(records)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to return")

	return cmd
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all search history",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			removed, err := c.ClearHistory(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]int{"removed": removed})
			}
			fmt.Printf("Removed %d history entries\n", removed)
			return nil
		},
	}
}
