package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/storage"
	"github.com/hartley-interiors/studio-server/internal/storage/item"
	"github.com/hartley-interiors/studio-server/internal/storage/transaction"
)

// CreateTransaction inserts a transaction together with its line items in a
// single database transaction, so the caller never observes a transaction
// with half its items. Line items inherit the transaction's project.
type CreateTransaction struct {
	Transaction transaction.TransactionCreate
	Items       []item.ItemCreate

	// Set by Perform on success.
	CreatedID      uuid.UUID
	CreatedItemIDs []uuid.UUID

	IAction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	transactionID, err := writer.Transaction.Insert(ctx, &c.Transaction)
	if err != nil {
		return err
	}

	itemIDs := make([]uuid.UUID, 0, len(c.Items))
	for i := range c.Items {
		itemCreate := c.Items[i]
		itemCreate.TransactionID = &transactionID
		itemCreate.ProjectID = c.Transaction.ProjectID

		itemID, err := writer.Item.Insert(ctx, &itemCreate)
		if err != nil {
			return err
		}
		itemIDs = append(itemIDs, itemID)
	}

	c.CreatedID = transactionID
	c.CreatedItemIDs = itemIDs
	return nil
}
