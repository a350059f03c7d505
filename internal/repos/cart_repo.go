package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ravi1983/cartvault/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// Upsert writes an entry, unconditionally overwriting any prior row for
// the same (user_id, item_id). Last write wins; no quantity accumulation.
func (r *CartRepo) Upsert(ctx context.Context, e domain.CartEntry) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
	  INSERT INTO cart_entries(user_id, item_id, description, price, expires_at)
	  VALUES(?, ?, ?, ?, ?)
	  ON CONFLICT(user_id, item_id) DO UPDATE SET
	    description = excluded.description,
	    price       = excluded.price,
	    expires_at  = excluded.expires_at
	`), e.UserID, e.ItemID, e.Description, e.Price, e.ExpiresAt)
	return err
}

// ListByUser returns the user's live entries. Expired rows are filtered
// here rather than trusting the store to drop them; the sweeper deletes
// them later. No ordering guarantee.
func (r *CartRepo) ListByUser(ctx context.Context, userID string, now int64) ([]domain.CartEntry, error) {
	out := []domain.CartEntry{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
	  SELECT user_id, item_id, description, price, expires_at
	  FROM cart_entries
	  WHERE user_id = ? AND expires_at > ?
	`), userID, now)
	return out, err
}

// Delete removes one entry by full key. Deleting an absent row is a no-op,
// matching at-most-once delete semantics.
func (r *CartRepo) Delete(ctx context.Context, userID, itemID string) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
	  DELETE FROM cart_entries WHERE user_id = ? AND item_id = ?
	`), userID, itemID)
	return err
}

// PurgeExpired hard-deletes every entry whose expiry has passed, across
// all users. Returns the number of rows removed.
func (r *CartRepo) PurgeExpired(ctx context.Context, now int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
	  DELETE FROM cart_entries WHERE expires_at <= ?
	`), now)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}
