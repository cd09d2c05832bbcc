package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/storage"
)

// AllocateItems moves a batch of inventory items onto a project in one
// database transaction. Callers treat allocation as atomic, there is no
// partial-success outcome.
type AllocateItems struct {
	ItemIDs   []uuid.UUID
	ProjectID uuid.UUID
	Space     string

	IAction
}

func (a *AllocateItems) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(a.ItemIDs) == 0 {
		return errors.New("no items selected")
	}

	return writer.Item.AllocateToProject(ctx, a.ItemIDs, a.ProjectID, a.Space)
}
