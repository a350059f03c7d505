package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/ravi1983/cartvault/internal/domain"
)

// ErrNoCatalogRow reports that no product matched the requested id.
// Callers classify it; the repo stays fault-agnostic.
var ErrNoCatalogRow = errors.New("no catalog row")

type CatalogRepo struct{ db *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{db: db} }

// Get reads the current description and price for one item. Pure read,
// no caching.
func (r *CatalogRepo) Get(ctx context.Context, itemID string) (domain.CatalogItem, error) {
	var it domain.CatalogItem
	err := r.db.GetContext(ctx, &it, r.db.Rebind(`
	  SELECT id, description, price FROM products WHERE id = ?
	`), itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CatalogItem{}, ErrNoCatalogRow
	}
	return it, err
}
