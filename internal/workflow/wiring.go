package workflow

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/operator"
	"github.com/hartley-interiors/studio-server/internal/operator/actions"
	"github.com/hartley-interiors/studio-server/internal/service"
	"github.com/hartley-interiors/studio-server/internal/storage/item"
	"github.com/hartley-interiors/studio-server/internal/storage/media"
	"github.com/hartley-interiors/studio-server/internal/storage/transaction"
)

// OperatorTransactionStore backs the workflow's create-and-patch surface
// with the operator (atomic creation) and the transaction service (image
// patches).
type OperatorTransactionStore struct {
	Delegator *operator.OperatorDelegator
	Service   *service.TransactionService
}

func (o *OperatorTransactionStore) CreateWithItems(ctx context.Context, create transaction.TransactionCreate, items []item.ItemCreate) (uuid.UUID, []uuid.UUID, error) {
	action := &actions.CreateTransaction{
		Transaction: create,
		Items:       items,
	}
	if err := o.Delegator.Process(ctx, action); err != nil {
		return uuid.Nil, nil, err
	}
	return action.CreatedID, action.CreatedItemIDs, nil
}

func (o *OperatorTransactionStore) SetReceiptImages(ctx context.Context, id uuid.UUID, images []media.Image) error {
	return o.Service.SetReceiptImages(ctx, id, images)
}

func (o *OperatorTransactionStore) SetOtherImages(ctx context.Context, id uuid.UUID, images []media.Image) error {
	return o.Service.SetOtherImages(ctx, id, images)
}

// OperatorItemAllocator backs batch allocation with the operator so the
// whole batch moves in one database transaction.
type OperatorItemAllocator struct {
	Delegator *operator.OperatorDelegator
}

func (o *OperatorItemAllocator) Allocate(ctx context.Context, itemIDs []uuid.UUID, projectID uuid.UUID, space string) error {
	return o.Delegator.Process(ctx, &actions.AllocateItems{
		ItemIDs:   itemIDs,
		ProjectID: projectID,
		Space:     space,
	})
}
