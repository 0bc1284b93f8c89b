package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltquote/voltquote/internal/cli"
	"github.com/voltquote/voltquote/internal/service"
	"github.com/voltquote/voltquote/internal/suggest"
)

func suggestCmd() *cobra.Command {
	var (
		partialText string
		lastItem    string
		draftItems  []string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Rank next-item suggestions for a draft",
		Long: `Query the suggestion engine directly. Provide the text being typed
(--text), the most recently added item (--last), or both; items already in
the draft (--draft, repeatable) are excluded from the results.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if partialText == "" && lastItem == "" {
				return fmt.Errorf("provide --text and/or --last")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine, _, err := initEngine(ctx, store)
			if err != nil {
				return err
			}

			catalog, err := store.GetCatalogItems(ctx)
			if err != nil {
				return err
			}
			documents, err := store.GetDocuments(ctx, service.DocumentFilter{})
			if err != nil {
				return err
			}

			suggestions := engine.Suggest(suggest.Query{
				PartialText: partialText,
				LastItem:    lastItem,
				DraftItems:  draftItems,
				Catalog:     catalog,
				Documents:   documents,
				Limit:       limit,
			})

			fmt.Println(cli.FormatTitle("Suggestions"))
			fmt.Println(cli.RenderSuggestions(suggestions))
			return nil
		},
	}

	cmd.Flags().StringVar(&partialText, "text", "", "partial text being typed")
	cmd.Flags().StringVar(&lastItem, "last", "", "most recently added draft item")
	cmd.Flags().StringArrayVar(&draftItems, "draft", nil, "item already in the draft (repeatable)")
	cmd.Flags().IntVar(&limit, "limit", 5, "maximum suggestions to return (3-8 typical)")

	return cmd
}
