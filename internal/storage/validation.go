package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/voltquote/voltquote/internal/model"
)

// validateContext ensures the context is usable.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	return nil
}

// validateString ensures a required string field is non-blank.
func validateString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// validateItem ensures a catalog item can be stored.
func validateItem(item *model.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}
	if err := validateString(item.Name, "item name"); err != nil {
		return err
	}
	if item.Rate < 0 {
		return fmt.Errorf("item rate cannot be negative")
	}
	if item.Quantity < 0 {
		return fmt.Errorf("item quantity cannot be negative")
	}
	return nil
}

// validateDocument ensures a document can be stored.
func validateDocument(doc *model.Document) error {
	if doc == nil {
		return fmt.Errorf("document cannot be nil")
	}
	if err := validateString(doc.Title, "document title"); err != nil {
		return err
	}
	switch doc.Kind {
	case model.KindQuote, model.KindBill:
	default:
		return fmt.Errorf("invalid document kind %q", doc.Kind)
	}
	for i, li := range doc.Items {
		if strings.TrimSpace(li.Particular) == "" {
			return fmt.Errorf("document line item %d has no particular", i)
		}
	}
	return nil
}
