package inventory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
type InMemoryRepository struct {
	mu     sync.Mutex
	owners map[string]map[string]int
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		owners: make(map[string]map[string]int),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves every item an owner holds
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := make(map[string]int, len(r.owners[input.OwnerID]))
	for item, n := range r.owners[input.OwnerID] {
		items[item] = n
	}
	return &GetOutput{OwnerID: input.OwnerID, Items: items}, nil
}

// Add grants count items to an owner
func (r *InMemoryRepository) Add(_ context.Context, input *AddInput) (*AddOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateChange(input.OwnerID, input.Item, input.Count); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.owners[input.OwnerID]
	if !ok {
		items = make(map[string]int)
		r.owners[input.OwnerID] = items
	}
	items[input.Item] += input.Count
	return &AddOutput{Count: items[input.Item]}, nil
}

// Remove takes count items from an owner
func (r *InMemoryRepository) Remove(_ context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateChange(input.OwnerID, input.Item, input.Count); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.owners[input.OwnerID]
	have := items[input.Item]
	if have < input.Count {
		return nil, errors.FailedPreconditionf("%s holds %d %s, need %d", input.OwnerID, have, input.Item, input.Count)
	}

	left := have - input.Count
	if left == 0 {
		delete(items, input.Item)
	} else {
		items[input.Item] = left
	}
	return &RemoveOutput{Count: left}, nil
}
