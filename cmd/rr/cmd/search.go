package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/jcloud242/resale-radar/internal/api/client"
)

func searchCmd() *cobra.Command {
	var (
		categoryID string
		limit      int
		sort       string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search live marketplace listings",
		Example: `  rr search "metroid prime gamecube"
  rr search "gamecube console" --limit 10 --sort price`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			result, err := c.Search(context.Background(), &apiclient.SearchRequest{
				Query:      args[0],
				CategoryID: categoryID,
				Limit:      limit,
				Sort:       sort,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}
			if err := printListingsTable(result.Listings); err != nil {
				return err
			}
			if result.HasMore {
				fmt.Printf("(showing %d of %d)\n", len(result.Listings), result.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&categoryID, "category-id", "", "marketplace category id")
	cmd.Flags().IntVar(&limit, "limit", 25, "maximum listings to return")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order (price, -price)")

	return cmd
}
