package domain

// CatalogItem is a row in the read-only product catalog. The catalog is
// maintained by an external process; cartvault only ever reads it.
type CatalogItem struct {
	ID          string  `db:"id" json:"itemId"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
}

// CartEntry is one user's claim on one catalog item. Description and price
// are snapshotted at add time and do not track later catalog changes.
// ExpiresAt is unix seconds; entries at or past it count as gone even if
// the row has not been swept yet.
type CartEntry struct {
	UserID      string  `db:"user_id" json:"userId"`
	ItemID      string  `db:"item_id" json:"itemId"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	ExpiresAt   int64   `db:"expires_at" json:"expiresAt"`
}

// Cart is a derived per-user view, never stored as such.
type Cart struct {
	UserID    string      `json:"userId"`
	Items     []CartEntry `json:"items"`
	ItemCount int         `json:"itemCount"`
}
