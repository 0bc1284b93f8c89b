package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voltquote/voltquote/internal/cli"
	"github.com/voltquote/voltquote/internal/common"
)

func sequenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sequence",
		Short: "Manage your preferred item sequence",
		Long: `The custom sequence is your preferred installation order. When set, it
becomes the strongest suggestion signal: items following the last added
item are proposed first. One sequence is active at a time, app-wide.`,
	}

	cmd.AddCommand(sequenceSetCmd())
	cmd.AddCommand(sequenceShowCmd())
	cmd.AddCommand(sequenceClearCmd())
	cmd.AddCommand(sequenceExtractCmd())
	cmd.AddCommand(sequenceCompletionCmd())

	return cmd
}

func sequenceSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <item>,<item>,...",
		Short: "Replace the sequence with a comma-separated item list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			_, sequences, err := initEngine(ctx, store)
			if err != nil {
				return err
			}

			seq := sequences.SetSequence(ctx, strings.Split(args[0], ","))
			if seq.IsEmpty() {
				fmt.Println(cli.FormatWarning("sequence is empty after trimming"))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("sequence set: %d items", len(seq.Items))))
			return nil
		},
	}
}

func sequenceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active sequence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			_, sequences, err := initEngine(ctx, store)
			if err != nil {
				return err
			}

			if !sequences.HasSequence() {
				fmt.Println(cli.FormatSubtle("no sequence set"))
				return nil
			}

			fmt.Println(cli.FormatTitle("Custom sequence"))
			for i, item := range sequences.GetSequence().Items {
				fmt.Printf("%2d. %s\n", i+1, item)
			}
			return nil
		},
	}
}

func sequenceClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the active sequence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			_, sequences, err := initEngine(ctx, store)
			if err != nil {
				return err
			}

			sequences.Clear(ctx)
			fmt.Println(cli.FormatSuccess("sequence cleared"))
			return nil
		},
	}
}

func sequenceExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <document-id>",
		Short: "Build the sequence from a saved document's item order",
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

			_, sequences, err := initEngine(ctx, store)
			if err != nil {
				return err
			}

			doc, err := store.GetDocumentByID(ctx, id)
			if err != nil {
				return err
			}
			if doc == nil {
				return common.NewUserError(fmt.Sprintf("document %d not found", id), common.ErrNotFound)
			}

			seq := sequences.SetFromDocument(ctx, *doc)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"extracted %d items from %q", len(seq.Items), doc.Title)))
			return nil
		},
	}
}

func sequenceCompletionCmd() *cobra.Command {
	var (
		draftItems []string
		docID      int64
	)

	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Show how much of the sequence a draft covers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			_, sequences, err := initEngine(ctx, store)
			if err != nil {
				return err
			}

			if !sequences.HasSequence() {
				fmt.Println(cli.FormatSubtle("no sequence set"))
				return nil
			}

			items := draftItems
			if docID > 0 {
				doc, err := store.GetDocumentByID(ctx, docID)
				if err != nil {
					return err
				}
				if doc == nil {
					return common.NewUserError(fmt.Sprintf("document %d not found", docID), common.ErrNotFound)
				}
				items = doc.ItemNames()
			}

			fmt.Println(cli.FormatTitle("Sequence completion"))
			fmt.Println(cli.RenderCompletion(sequences.GetCompletion(items)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&draftItems, "draft", nil, "item in the current draft (repeatable)")
	cmd.Flags().Int64Var(&docID, "doc", 0, "score a saved document instead of --draft items")

	return cmd
}
