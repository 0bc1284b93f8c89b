package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltquote/voltquote/internal/cli"
	"github.com/voltquote/voltquote/internal/model"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the item catalog",
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogAddCmd())

	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all catalog items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			items, err := store.GetCatalogItems(ctx)
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Println(cli.FormatSubtle("catalog is empty; add items with 'voltquote catalog add'"))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Catalog (%d items)", len(items))))
			for _, item := range items {
				line := fmt.Sprintf("%-30s", item.Name)
				if item.Unit != "" {
					line += fmt.Sprintf("  %s", item.Unit)
				}
				if item.Rate > 0 {
					line += fmt.Sprintf("  @ %.2f", item.Rate)
				}
				if item.Category != "" {
					line += "  " + cli.FormatSubtle(item.Category)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func catalogAddCmd() *cobra.Command {
	var (
		unit     string
		rate     float64
		category string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			existing, err := store.GetCatalogItemByName(ctx, args[0])
			if err != nil {
				return err
			}
			if existing != nil {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%q already in catalog", existing.Name)))
				return nil
			}

			item := &model.Item{
				Name:     args[0],
				Unit:     unit,
				Rate:     rate,
				Category: category,
			}
			if err := store.AddCatalogItem(ctx, item); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("added %q (id %d)", item.Name, item.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "unit of measure (e.g. point, metre)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "default rate per unit")
	cmd.Flags().StringVar(&category, "category", "", "item category")

	return cmd
}
