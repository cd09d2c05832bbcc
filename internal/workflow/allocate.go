package workflow

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/gofrs/uuid/v5"
)

// ErrNoSelection is returned when allocation is attempted with nothing selected.
var ErrNoSelection = errors.New("no items selected")

// itemAllocator is the slice of the allocation backend the BatchAllocator needs.
type itemAllocator interface {
	Allocate(ctx context.Context, itemIDs []uuid.UUID, projectID uuid.UUID, space string) error
}

// BatchAllocator tracks a selection of inventory items and the allocation
// modal, and moves the whole selection onto a project in one call. On
// success the selection is cleared and the modal closes; on failure the
// selection and modal stay put and an alert is recorded. Allocation is
// all-or-nothing, there is no partial success.
type BatchAllocator struct {
	backend itemAllocator

	mu        sync.Mutex
	selected  map[uuid.UUID]struct{}
	modalOpen bool
	alert     string
}

func NewBatchAllocator(backend itemAllocator) *BatchAllocator {
	return &BatchAllocator{
		backend:  backend,
		selected: make(map[uuid.UUID]struct{}),
	}
}

// Select adds an item to the selection.
func (b *BatchAllocator) Select(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selected[id] = struct{}{}
}

// Deselect removes an item from the selection.
func (b *BatchAllocator) Deselect(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.selected, id)
}

// Selected returns the selection in a stable order.
func (b *BatchAllocator) Selected() []uuid.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(b.selected))
	for id := range b.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// OpenModal opens the allocation modal and clears any previous alert.
func (b *BatchAllocator) OpenModal() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modalOpen = true
	b.alert = ""
}

// ModalOpen reports whether the allocation modal is open.
func (b *BatchAllocator) ModalOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.modalOpen
}

// Alert returns the blocking alert from the last failed allocation, empty
// when there is none.
func (b *BatchAllocator) Alert() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.alert
}

// Allocate sends the whole selection to the target project in one backend
// call.
func (b *BatchAllocator) Allocate(ctx context.Context, projectID uuid.UUID, space string) error {
	ids := b.Selected()
	if len(ids) == 0 {
		return ErrNoSelection
	}

	if err := b.backend.Allocate(ctx, ids, projectID, space); err != nil {
		b.mu.Lock()
		b.alert = "Failed to allocate items to the project. Please try again."
		b.mu.Unlock()
		return err
	}

	b.mu.Lock()
	b.selected = make(map[uuid.UUID]struct{})
	b.modalOpen = false
	b.alert = ""
	b.mu.Unlock()
	return nil
}
