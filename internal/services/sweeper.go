package services

import (
	"context"
	"time"

	applog "github.com/ravi1983/cartvault/internal/log"
	"github.com/ravi1983/cartvault/internal/repos"
)

// Sweeper hard-deletes expired cart entries in the background. Reads stay
// correct without it (the repo filters on expiry); the sweeper just keeps
// the table from accumulating dead rows.
type Sweeper struct {
	Carts *repos.CartRepo
	Every time.Duration
	Now   func() time.Time
}

func NewSweeper(carts *repos.CartRepo, every time.Duration) *Sweeper {
	return &Sweeper{Carts: carts, Every: every, Now: time.Now}
}

// Run blocks until ctx is cancelled. A non-positive interval disables the
// sweep entirely.
func (s *Sweeper) Run(ctx context.Context) {
	if s.Every <= 0 {
		return
	}
	t := time.NewTicker(s.Every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := s.Carts.PurgeExpired(ctx, s.Now().Unix())
			if err != nil {
				applog.Error(nil, "cart.sweep", err, nil)
				continue
			}
			if n > 0 {
				applog.Info(nil, "cart.sweep", map[string]any{"purged": n})
			}
		}
	}
}
