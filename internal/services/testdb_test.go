package services_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/ravi1983/cartvault/internal/domain"
	"github.com/ravi1983/cartvault/internal/faults"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// one conn: each new :memory: connection is a fresh empty database
	db.SetMaxOpenConns(1)
	schema := `
	CREATE TABLE products(
	  id TEXT PRIMARY KEY,
	  description TEXT NOT NULL DEFAULT '',
	  price NUMERIC NOT NULL CHECK (price >= 0)
	);
	CREATE TABLE cart_entries(
	  user_id TEXT NOT NULL,
	  item_id TEXT NOT NULL,
	  description TEXT NOT NULL DEFAULT '',
	  price NUMERIC NOT NULL,
	  expires_at BIGINT NOT NULL,
	  PRIMARY KEY(user_id, item_id)
	);
	INSERT INTO products(id, description, price) VALUES
	  ('101','Widget',9.99),
	  ('102','Gadget',24.50);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fakeCatalog lets tests steer resolution without a database.
type fakeCatalog struct {
	items map[string]domain.CatalogItem
	err   error
}

func (f *fakeCatalog) Resolve(_ context.Context, itemID string) (domain.CatalogItem, error) {
	if f.err != nil {
		return domain.CatalogItem{}, f.err
	}
	it, ok := f.items[itemID]
	if !ok {
		return domain.CatalogItem{}, faults.NotFoundf("item %q not found in catalog", itemID)
	}
	return it, nil
}
