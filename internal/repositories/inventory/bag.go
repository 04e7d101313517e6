package inventory

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-battle/internal/engine/resolve"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Bag is one owner's inventory seen through the battle engine's item
// interface. Calls made by the engine use the context the bag was built
// with.
type Bag struct {
	ctx     context.Context
	repo    Repository
	ownerID string
}

var _ resolve.Inventory = (*Bag)(nil)

// consumeAttempts bounds how often Consume retries a removal that lost a
// race with another writer.
const consumeAttempts = 3

// NewBag binds repo to ownerID.
func NewBag(ctx context.Context, repo Repository, ownerID string) (*Bag, error) {
	if repo == nil {
		return nil, errors.InvalidArgument("repository is required")
	}
	if ownerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	return &Bag{ctx: ctx, repo: repo, ownerID: ownerID}, nil
}

// OwnerID returns the owner the bag draws from.
func (b *Bag) OwnerID() string { return b.ownerID }

// Items returns a copy of the bag's contents.
func (b *Bag) Items() (map[string]int, error) {
	out, err := b.repo.Get(b.ctx, &GetInput{OwnerID: b.ownerID})
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// HasItem reports whether at least n of alias are held, and at least one
// when n is below 1. Storage failures count as not holding it.
func (b *Bag) HasItem(alias string, n int) bool {
	items, err := b.Items()
	if err != nil {
		slog.Warn("Failed to read inventory", "owner_id", b.ownerID, "item", alias, "error", err)
		return false
	}
	return items[alias] >= max(n, 1)
}

// Consume removes n of alias, retrying when a concurrent write aborted the
// removal.
func (b *Bag) Consume(alias string, n int) error {
	var err error
	for range consumeAttempts {
		_, err = b.repo.Remove(b.ctx, &RemoveInput{OwnerID: b.ownerID, Item: alias, Count: n})
		if !errors.IsAborted(err) {
			return err
		}
	}
	return err
}

// Grant adds n of item.
func (b *Bag) Grant(item string, n int) error {
	_, err := b.repo.Add(b.ctx, &AddInput{OwnerID: b.ownerID, Item: item, Count: n})
	return err
}
