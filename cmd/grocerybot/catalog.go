package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/freshmart/grocery-bot/internal/cli"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Check Google Sheets connectivity and show the catalog",
		RunE:  runCatalog,
	}

	cmd.Flags().Bool("refresh", false, "drop the cached catalog and reload from the sheet")

	return cmd
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	client, err := newSheetsClient(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	if client == nil {
		return fmt.Errorf("sheets.spreadsheet_id is not configured")
	}

	title, err := client.Title(ctx)
	if err != nil {
		fmt.Println(cli.FormatError("Google Sheets not reachable"))
		return err
	}

	refresh, _ := cmd.Flags().GetBool("refresh")

	store := newCatalogStore(client, logger)
	load := store.Load
	if refresh {
		load = store.Refresh
	}
	if err := load(ctx); err != nil {
		fmt.Println(cli.FormatError("catalog failed to load"))
		return err
	}

	fmt.Println(cli.FormatSuccess("Google Sheets connected"))
	fmt.Printf("  Sheet: %s\n", title)
	fmt.Printf("  Categories: %d\n", store.CategoryCount())
	fmt.Printf("  Items: %d\n\n", store.ItemCount())

	for _, cat := range store.Catalog().Categories {
		fmt.Printf("%s. %s (%d items)\n", cat.Key, cat.Name, len(cat.Items))
		for i, item := range cat.Items {
			fmt.Println(cli.SubtleStyle.Render(
				fmt.Sprintf("   %d. %s — ₹%s/%s", i+1, item.Name, item.Price.String(), item.Unit)))
		}
	}

	return nil
}
