package repos_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
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
