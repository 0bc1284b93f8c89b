package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/voltquote/voltquote/internal/cli"
	"github.com/voltquote/voltquote/internal/common"
	"github.com/voltquote/voltquote/internal/history"
	"github.com/voltquote/voltquote/internal/model"
	"github.com/voltquote/voltquote/internal/service"
)

func documentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Browse and analyze saved quotes and bills",
	}

	cmd.AddCommand(documentsListCmd())
	cmd.AddCommand(documentsShowCmd())
	cmd.AddCommand(documentsAnalyzeCmd())

	return cmd
}

func documentsListCmd() *cobra.Command {
	var (
		kind  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved documents, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			filter := service.DocumentFilter{Limit: limit}
			switch kind {
			case "":
			case "quote":
				filter.Kind = model.KindQuote
			case "bill":
				filter.Kind = model.KindBill
			default:
				return fmt.Errorf("invalid kind %q (use quote or bill)", kind)
			}

			docs, err := store.GetDocuments(ctx, filter)
			if err != nil {
				return err
			}

			if len(docs) == 0 {
				fmt.Println(cli.FormatSubtle("no documents saved yet"))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Documents (%d)", len(docs))))
			for _, doc := range docs {
				fmt.Printf("%4d  %-5s  %-30s  %2d items  %s\n",
					doc.ID, doc.Kind, doc.Title, len(doc.Items),
					cli.FormatSubtle(doc.CreatedAt.Format("2006-01-02")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "filter by kind (quote, bill)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum documents to list (0 = all)")

	return cmd
}

func documentsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <document-id>",
		Short: "Print a document's line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid document id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			doc, err := store.GetDocumentByID(ctx, id)
			if err != nil {
				return err
			}
			if doc == nil {
				return common.NewUserError(fmt.Sprintf("document %d not found", id), common.ErrNotFound)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s %s", doc.Kind, doc.Title)))
			if doc.Customer != "" {
				fmt.Println(cli.FormatSubtle("customer: " + doc.Customer))
			}

			var total float64
			for i, li := range doc.Items {
				total += li.Amount()
				fmt.Printf("%2d. %-30s %8.2f %-8s @ %8.2f = %10.2f\n",
					i+1, li.Particular, li.Quantity, li.Unit, li.Rate, li.Amount())
			}
			fmt.Printf("%56s %10.2f\n", "total:", total)
			return nil
		},
	}
}

func documentsAnalyzeCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute item co-occurrence statistics across all documents",
		Long: `Walks every saved document and reports, for each catalog item, which
other items most often appear alongside it. The same statistics drive
the historical suggestion signal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			catalog, err := store.GetCatalogItems(ctx)
			if err != nil {
				return err
			}
			documents, err := store.GetDocuments(ctx, service.DocumentFilter{})
			if err != nil {
				return err
			}

			if len(catalog) == 0 || len(documents) == 0 {
				fmt.Println(cli.FormatSubtle("need at least one catalog item and one document to analyze"))
				return nil
			}

			bar := progressbar.NewOptions(len(catalog),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Analyzing documents...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			type itemReport struct {
				name       string
				companions []history.ItemFrequency
			}

			reports := make([]itemReport, 0, len(catalog))
			for _, item := range catalog {
				companions := history.CoOccurringWith(item.Name, documents)
				if len(companions) > top {
					companions = companions[:top]
				}
				if len(companions) > 0 {
					reports = append(reports, itemReport{name: item.Name, companions: companions})
				}
				_ = bar.Add(1)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Co-occurrence across %d documents", len(documents))))
			if len(reports) == 0 {
				fmt.Println(cli.FormatSubtle("no co-occurrence found; save more documents"))
				return nil
			}

			for _, r := range reports {
				fmt.Printf("%s\n", r.name)
				for _, c := range r.companions {
					fmt.Printf("    %-30s ×%d\n", c.Item, c.Frequency)
				}
			}

			fmt.Println()
			fmt.Println(cli.FormatSubtle("most used overall:"))
			common := history.CommonItems(documents)
			if len(common) > top {
				common = common[:top]
			}
			for _, c := range common {
				fmt.Printf("    %-30s ×%d\n", c.Item, c.Frequency)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 5, "companions to show per item")

	return cmd
}
