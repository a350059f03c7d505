package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/ravi1983/cartvault/internal/config"
	"github.com/ravi1983/cartvault/internal/dispatch"
	"github.com/ravi1983/cartvault/internal/faults"
	"github.com/ravi1983/cartvault/internal/identity"
	"github.com/ravi1983/cartvault/internal/repos"
	"github.com/ravi1983/cartvault/internal/services"
)

var errBadBody = faults.InvalidArgumentf("malformed request body")

type Deps struct {
	CartHandler *CartHandler
	Sweeper     *services.Sweeper
}

func NewDeps(db *sqlx.DB, cfg config.Config) (*Deps, error) {
	auth, err := identity.ForMode(cfg.AuthMode, cfg.JWTSecret, cfg.APIKeyHash)
	if err != nil {
		return nil, err
	}

	catalogRepo := repos.NewCatalogRepo(db)
	cartRepo := repos.NewCartRepo(db)

	resolver := services.NewCatalogResolver(catalogRepo, cfg.OpTimeout)
	cartSvc := services.NewCartService(resolver, cartRepo, cfg.CartTTL, cfg.OpTimeout)

	return &Deps{
		CartHandler: &CartHandler{
			Dispatch: dispatch.NewDispatcher(cartSvc),
			Auth:     auth,
		},
		Sweeper: services.NewSweeper(cartRepo, cfg.SweepEvery),
	}, nil
}
