package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/jcloud242/resale-radar/internal/api/client"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

func itemsCmd() *cobra.Command {
	itemsRoot := &cobra.Command{
		Use:   "items",
		Short: "Manage tracked items",
		Long: "Manage the items whose resale value is tracked over time. Each item\n" +
			"belongs to a collection and is re-estimated on the refresh schedule.",
	}

	itemsRoot.AddCommand(
		itemsListCmd(),
		itemsGetCmd(),
		itemsAddCmd(),
		itemsDeleteCmd(),
		itemsHistoryCmd(),
	)

	return itemsRoot
}

func itemsListCmd() *cobra.Command {
	var (
		collectionID string
		category     string
		platform     string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked items",
		Example: `  rr items list
  rr items list --collection abc123 --category video_game`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			items, total, err := c.ListItems(context.Background(), &apiclient.ItemFilter{
				CollectionID: collectionID,
				Category:     category,
				Platform:     platform,
				Limit:        limit,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(items)
			}
			if len(items) == 0 {
				fmt.Println("No items found.")
				return nil
			}
			if err := printItemsTable(items); err != nil {
				return err
			}
			if total > len(items) {
				fmt.Printf("(showing %d of %d)\n", len(items), total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&collectionID, "collection", "", "filter by collection ID")
	cmd.Flags().
		StringVar(&category, "category", "", "filter by category (video_game, console, accessory, media, other)")
	cmd.Flags().StringVar(&platform, "platform", "", "filter by platform")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum items to return")

	return cmd
}

func itemsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show item details",
		Example: `  rr items get abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			it, err := c.GetItem(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(it)
			}
			return printItemDetail(it)
		},
	}
}

func itemsAddCmd() *cobra.Command {
	var (
		itemPlatform string
		itemCategory string
		itemUPC      string
		itemQuery    string
		itemBuyPrice float64
	)

	cmd := &cobra.Command{
		Use:   "add <collection-id> <title>",
		Short: "Add an item to a collection",
		Long: "Add a tracked item to a collection. The market search query defaults\n" +
			"to the title plus platform; use --query to override it.",
		Example: `  # Track a game with its platform
  rr items add abc123 "Metroid Prime" --platform GameCube --buy-price 12.50

  # Track with an explicit search query
  rr items add abc123 "Pokemon Emerald" --platform GBA \
    --query "pokemon emerald gba cartridge authentic"`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			it := &domain.Item{
				Title:    args[1],
				Platform: itemPlatform,
				Category: domain.Category(itemCategory),
				UPC:      itemUPC,
				Query:    itemQuery,
			}
			if itemBuyPrice > 0 {
				it.BuyPrice = &itemBuyPrice
			}

			c := newClient()
			created, err := c.CreateItem(context.Background(), args[0], it)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Item added: %s (%s)\n", created.Title, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&itemPlatform, "platform", "", "platform (GameCube, PS2, GBA, ...)")
	cmd.Flags().
		StringVar(&itemCategory, "category", "", "category (video_game, console, accessory, media, other)")
	cmd.Flags().StringVar(&itemUPC, "upc", "", "UPC barcode")
	cmd.Flags().StringVar(&itemQuery, "query", "", "explicit market search query")
	cmd.Flags().Float64Var(&itemBuyPrice, "buy-price", 0, "price paid for the item")

	return cmd
}

func itemsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a tracked item",
		Example: `  rr items delete abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteItem(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Item %s deleted.\n", args[0])
			return nil
		},
	}
}

func itemsHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <id>",
		Short: "Show an item's value history",
		Example: `  rr items history abc123
  rr items history abc123 --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			snaps, err := c.GetItemSnapshots(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(snaps)
			}
			if len(snaps) == 0 {
				fmt.Println("No snapshots recorded yet.")
				return nil
			}
			return printSnapshotsTable(snaps)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum snapshots to return")

	return cmd
}
