package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func collectionsCmd() *cobra.Command {
	collectionsRoot := &cobra.Command{
		Use:   "collections",
		Short: "Manage collections",
		Long:  "Manage collections, the user-curated groups that tracked items belong to.",
	}

	collectionsRoot.AddCommand(
		collectionsListCmd(),
		collectionsGetCmd(),
		collectionsCreateCmd(),
		collectionsRenameCmd(),
		collectionsDeleteCmd(),
	)

	return collectionsRoot
}

func collectionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all collections",
		Example: `  rr collections list
  rr collections list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			collections, err := c.ListCollections(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(collections)
			}
			if len(collections) == 0 {
				fmt.Println("No collections found.")
				return nil
			}
			return printCollectionsTable(collections)
		},
	}
}

func collectionsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show collection details",
		Example: `  rr collections get abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			col, err := c.GetCollection(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(col)
			}
			fmt.Printf("%s\t%s\n", col.ID, col.Name)
			return nil
		},
	}
}

func collectionsCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create <name>",
		Short:   "Create a new collection",
		Example: `  rr collections create "GameCube Library"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			created, err := c.CreateCollection(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Collection created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
}

func collectionsRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rename <id> <name>",
		Short:   "Rename a collection",
		Example: `  rr collections rename abc123 "GameCube Shelf"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			updated, err := c.RenameCollection(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(updated)
			}
			fmt.Printf("Collection renamed to %s.\n", updated.Name)
			return nil
		},
	}
}

func collectionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a collection and its items",
		Example: `  rr collections delete abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteCollection(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Collection %s deleted.\n", args[0])
			return nil
		},
	}
}
