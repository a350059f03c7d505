package services

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/ravi1983/cartvault/internal/domain"
	"github.com/ravi1983/cartvault/internal/faults"
	"github.com/ravi1983/cartvault/internal/validate"
)

// CatalogLookup is what the cart store needs from the catalog side.
// *CatalogResolver satisfies it; tests plug in fakes.
type CatalogLookup interface {
	Resolve(ctx context.Context, itemID string) (domain.CatalogItem, error)
}

// CartBackend is the store surface the service mutates through.
// *repos.CartRepo satisfies it; tests substitute flaky fakes.
type CartBackend interface {
	Upsert(ctx context.Context, e domain.CartEntry) error
	ListByUser(ctx context.Context, userID string, now int64) ([]domain.CartEntry, error)
	Delete(ctx context.Context, userID, itemID string) error
}

// CartService owns the per-(userId, itemId) entry lifecycle:
// Absent -> Present -> Absent, idempotent at both edges.
type CartService struct {
	Catalog   CatalogLookup
	Carts     CartBackend
	TTL       time.Duration
	OpTimeout time.Duration

	// Now is swappable for expiry tests. Defaults to time.Now.
	Now func() time.Time
}

func NewCartService(catalog CatalogLookup, carts CartBackend, ttl, opTimeout time.Duration) *CartService {
	return &CartService{
		Catalog:   catalog,
		Carts:     carts,
		TTL:       ttl,
		OpTimeout: opTimeout,
		Now:       time.Now,
	}
}

// AddItem validates the ids, snapshots the item from the catalog, stamps
// the expiry, and upserts. A failed lookup aborts before any write;
// re-adding overwrites the prior snapshot (last write wins, single unit).
func (s *CartService) AddItem(ctx context.Context, userID, itemID string) (domain.CartEntry, error) {
	userID, ok := validate.UserID(userID)
	if !ok {
		return domain.CartEntry{}, faults.InvalidArgumentf("missing or malformed userId")
	}
	itemID, ok = validate.ItemID(itemID)
	if !ok {
		return domain.CartEntry{}, faults.InvalidArgumentf("missing or malformed itemId")
	}

	item, err := s.Catalog.Resolve(ctx, itemID)
	if err != nil {
		return domain.CartEntry{}, err
	}

	e := domain.CartEntry{
		UserID:      userID,
		ItemID:      itemID,
		Description: item.Description,
		Price:       item.Price,
		ExpiresAt:   s.Now().Add(s.TTL).Unix(),
	}
	if err := s.mutate(ctx, func(ctx context.Context) error {
		return s.Carts.Upsert(ctx, e)
	}); err != nil {
		return domain.CartEntry{}, faults.Infra(err, "cart upsert")
	}
	return e, nil
}

// ListItems is a snapshot read of the user's live entries. Empty carts
// are a valid result, not an error.
func (s *CartService) ListItems(ctx context.Context, userID string) (domain.Cart, error) {
	userID, ok := validate.UserID(userID)
	if !ok {
		return domain.Cart{}, faults.InvalidArgumentf("missing or malformed userId")
	}

	var items []domain.CartEntry
	if err := s.mutate(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.Carts.ListByUser(ctx, userID, s.Now().Unix())
		return err
	}); err != nil {
		return domain.Cart{}, faults.Infra(err, "cart read")
	}
	return domain.Cart{UserID: userID, Items: items, ItemCount: len(items)}, nil
}

// RemoveItem deletes the key unconditionally. Removing an absent entry
// succeeds identically, so the call commutes with itself.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (string, error) {
	userID, ok := validate.UserID(userID)
	if !ok {
		return "", faults.InvalidArgumentf("missing or malformed userId")
	}
	itemID, ok = validate.ItemID(itemID)
	if !ok {
		return "", faults.InvalidArgumentf("missing or malformed itemId")
	}

	if err := s.mutate(ctx, func(ctx context.Context) error {
		return s.Carts.Delete(ctx, userID, itemID)
	}); err != nil {
		return "", faults.Infra(err, "cart delete")
	}
	return itemID, nil
}

// mutate runs one store call under the per-call timeout, retrying
// transient failures with bounded backoff. Classified client faults pass
// through untouched.
func (s *CartService) mutate(ctx context.Context, op func(ctx context.Context) error) error {
	return retry.Do(ctx, backoff(), func(ctx context.Context) error {
		cctx, cancel := withTimeout(ctx, s.OpTimeout)
		defer cancel()
		if err := op(cctx); err != nil {
			if faults.Retryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
}
