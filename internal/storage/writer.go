package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/hartley-interiors/studio-server/internal/storage/item"
	"github.com/hartley-interiors/studio-server/internal/storage/transaction"
)

type Writer struct {
	tx          bob.Tx
	Transaction *transaction.Table
	Item        *item.Table
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		Transaction: transaction.NewTableWithExecutor(tx),
		Item:        item.NewTableWithExecutor(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
