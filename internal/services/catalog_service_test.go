package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravi1983/cartvault/internal/domain"
	"github.com/ravi1983/cartvault/internal/faults"
	"github.com/ravi1983/cartvault/internal/repos"
	"github.com/ravi1983/cartvault/internal/services"
)

// flakyCatalogReader fails the first failures reads, then serves item.
type flakyCatalogReader struct {
	calls    int
	failures int
	failWith error
	item     domain.CatalogItem
}

func (f *flakyCatalogReader) Get(_ context.Context, _ string) (domain.CatalogItem, error) {
	f.calls++
	if f.calls <= f.failures {
		return domain.CatalogItem{}, f.failWith
	}
	return f.item, nil
}

func TestCatalogResolver_Resolve(t *testing.T) {
	db := memdb(t)
	r := services.NewCatalogResolver(repos.NewCatalogRepo(db), time.Second)

	it, err := r.Resolve(context.Background(), "101")
	require.NoError(t, err)
	assert.Equal(t, "101", it.ID)
	assert.Equal(t, "Widget", it.Description)
	assert.InDelta(t, 9.99, it.Price, 1e-9)
}

func TestCatalogResolver_UnknownItem(t *testing.T) {
	db := memdb(t)
	r := services.NewCatalogResolver(repos.NewCatalogRepo(db), time.Second)

	_, err := r.Resolve(context.Background(), "does-not-exist")
	require.Error(t, err)
	assert.Equal(t, faults.ItemNotFound, faults.KindOf(err))
}

func TestCatalogResolver_RecoversFromTransientFailure(t *testing.T) {
	cat := &flakyCatalogReader{
		failures: 1,
		failWith: errors.New("connection reset by peer"),
		item:     domain.CatalogItem{ID: "101", Description: "Widget", Price: 9.99},
	}
	r := services.NewCatalogResolver(cat, time.Second)

	it, err := r.Resolve(context.Background(), "101")
	require.NoError(t, err)
	assert.Equal(t, "Widget", it.Description)
	assert.Equal(t, 2, cat.calls)
}

func TestCatalogResolver_MissingRowNotRetried(t *testing.T) {
	cat := &flakyCatalogReader{failures: 3, failWith: repos.ErrNoCatalogRow}
	r := services.NewCatalogResolver(cat, time.Second)

	_, err := r.Resolve(context.Background(), "404")
	require.Error(t, err)
	assert.Equal(t, faults.ItemNotFound, faults.KindOf(err))
	assert.Equal(t, 1, cat.calls)
}

func TestCatalogResolver_StoreFailureIsInfrastructure(t *testing.T) {
	db := memdb(t)
	repo := repos.NewCatalogRepo(db)
	require.NoError(t, db.Close())

	r := services.NewCatalogResolver(repo, time.Second)
	_, err := r.Resolve(context.Background(), "101")
	require.Error(t, err)
	assert.Equal(t, faults.Infrastructure, faults.KindOf(err))
}
