package services

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/ravi1983/cartvault/internal/domain"
	"github.com/ravi1983/cartvault/internal/faults"
	"github.com/ravi1983/cartvault/internal/repos"
)

// CatalogReader is the slice of the catalog repo the resolver reads
// through. *repos.CatalogRepo satisfies it; tests substitute flaky fakes.
type CatalogReader interface {
	Get(ctx context.Context, itemID string) (domain.CatalogItem, error)
}

// CatalogResolver answers "what does this item look like right now" from
// the relational catalog. No cache: every add pays one lookup.
type CatalogResolver struct {
	Catalog   CatalogReader
	OpTimeout time.Duration
}

func NewCatalogResolver(catalog CatalogReader, opTimeout time.Duration) *CatalogResolver {
	return &CatalogResolver{Catalog: catalog, OpTimeout: opTimeout}
}

// Resolve returns the item's current description and price, an
// ItemNotFound fault for unknown ids, or an Infrastructure fault for
// store trouble. Transient store errors are retried with bounded backoff;
// a missing row never is.
func (s *CatalogResolver) Resolve(ctx context.Context, itemID string) (domain.CatalogItem, error) {
	var it domain.CatalogItem
	err := retry.Do(ctx, backoff(), func(ctx context.Context) error {
		cctx, cancel := withTimeout(ctx, s.OpTimeout)
		defer cancel()

		var err error
		it, err = s.Catalog.Get(cctx, itemID)
		if err != nil && !errors.Is(err, repos.ErrNoCatalogRow) && faults.Retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
	if errors.Is(err, repos.ErrNoCatalogRow) {
		return domain.CatalogItem{}, faults.NotFoundf("item %q not found in catalog", itemID)
	}
	if err != nil {
		return domain.CatalogItem{}, faults.Infra(err, "catalog lookup")
	}
	return it, nil
}
