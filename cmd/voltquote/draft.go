package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voltquote/voltquote/internal/cli"
	"github.com/voltquote/voltquote/internal/model"
	"github.com/voltquote/voltquote/internal/service"
	"github.com/voltquote/voltquote/internal/tui"
)

func draftCmd() *cobra.Command {
	var (
		title    string
		customer string
		kind     string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Build a quote interactively with live suggestions",
		Long: `Opens the interactive draft screen. Suggestions update as you type,
ranked by your custom sequence, known installation patterns, past
document history, and catalog matches. Tab selects a suggestion,
enter commits it, esc finishes the draft.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
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

			items, err := tui.Run(engine.Suggest, catalog, documents)
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Println(cli.FormatSubtle("draft is empty, nothing to do"))
				return nil
			}

			fmt.Println(cli.FormatTitle(title))
			for i, item := range items {
				fmt.Printf("%2d. %s\n", i+1, item)
			}

			if !save {
				return nil
			}

			docKind := model.KindQuote
			if strings.EqualFold(kind, "bill") {
				docKind = model.KindBill
			}

			doc := &model.Document{
				Title:    title,
				Customer: customer,
				Kind:     docKind,
			}
			for i, name := range items {
				li := model.LineItem{Particular: name, Position: i, Quantity: 1}
				if catalogItem, err := store.GetCatalogItemByName(ctx, name); err == nil && catalogItem != nil {
					li.Unit = catalogItem.Unit
					li.Rate = catalogItem.Rate
				}
				doc.Items = append(doc.Items, li)
			}

			if err := store.SaveDocument(ctx, doc); err != nil {
				return fmt.Errorf("failed to save draft: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("saved as document %d", doc.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "New quote", "document title")
	cmd.Flags().StringVar(&customer, "customer", "", "customer name")
	cmd.Flags().StringVar(&kind, "kind", "quote", "document kind (quote, bill)")
	cmd.Flags().BoolVar(&save, "save", true, "save the finished draft as a document")

	return cmd
}
