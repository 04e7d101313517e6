// Package inventory stores the item stash a party draws consumables from
// and receives battle loot into.
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/rpg-battle/internal/repositories/inventory Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Repository defines the interface for inventory persistence
type Repository interface {
	// Get retrieves every item an owner holds
	// Returns errors.InvalidArgument for an empty owner ID
	// An owner without items gets an empty map, not NotFound
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Add grants count items to an owner
	// Returns errors.InvalidArgument for an empty owner ID or item, or a count below 1
	Add(ctx context.Context, input *AddInput) (*AddOutput, error)

	// Remove takes count items from an owner
	// Returns errors.FailedPrecondition when the owner holds fewer than count
	// Returns errors.Aborted when a concurrent change won the race
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)
}

// GetInput defines the input for getting an inventory
type GetInput struct {
	OwnerID string
}

// GetOutput defines the output for getting an inventory
type GetOutput struct {
	OwnerID string
	Items   map[string]int
}

// AddInput defines the input for adding items
type AddInput struct {
	OwnerID string
	Item    string
	Count   int
}

// AddOutput holds the new count of the item
type AddOutput struct {
	Count int
}

// RemoveInput defines the input for removing items
type RemoveInput struct {
	OwnerID string
	Item    string
	Count   int
}

// RemoveOutput holds the count left after the removal
type RemoveOutput struct {
	Count int
}

const (
	errOwnerIDEmpty = "owner ID cannot be empty"
	errItemEmpty    = "item cannot be empty"
	errCountInvalid = "count must be at least 1"
)

func validateChange(ownerID, item string, count int) error {
	switch {
	case ownerID == "":
		return errors.InvalidArgument(errOwnerIDEmpty)
	case item == "":
		return errors.InvalidArgument(errItemEmpty)
	case count < 1:
		return errors.InvalidArgument(errCountInvalid)
	}
	return nil
}
