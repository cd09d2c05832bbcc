package actions

import (
	"context"

	"github.com/hartley-interiors/studio-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
