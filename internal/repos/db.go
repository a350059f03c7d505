package repos

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/ravi1983/cartvault/internal/repos/migrations"
)

// OpenDB opens the backing store, runs migrations, and seeds demo catalog
// rows when the catalog is empty. driver is "sqlite" or "postgres".
// The returned *sqlx.DB is the single shared pool; callers inject it into
// repos instead of reaching for package-level state.
func OpenDB(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	name, dialect, err := driverNames(driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if err := runMigrations(ctx, db, dialect); err != nil {
		db.Close()
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func driverNames(driver string) (sqlDriver, gooseDialect string, err error) {
	switch driver {
	case "sqlite", "":
		return "sqlite", "sqlite3", nil
	case "postgres":
		return "pgx", "pgx", nil
	default:
		return "", "", fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func runMigrations(ctx context.Context, db *sqlx.DB, dialect string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// seedIfEmpty inserts demo catalog rows so a fresh dev instance has
// something to add to a cart. Idempotent; safe to run every start.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog items")

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	rows := []struct {
		id, desc string
		price    float64
	}{
		{"101", "Widget", 9.99},
		{"102", "Gadget", 24.50},
		{"103", "Sprocket", 3.15},
	}
	for _, r := range rows {
		if _, err := tx.Exec(
			tx.Rebind(`INSERT INTO products(id, description, price) VALUES(?, ?, ?)`),
			r.id, r.desc, r.price,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}
