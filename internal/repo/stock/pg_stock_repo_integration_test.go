//go:build integration
// +build integration

package stock_repo_test

import (
	"context"
	_ "embed"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
	"github.com/nhoxwy/pos-availability/internal/domain/stock"
	stock_repo "github.com/nhoxwy/pos-availability/internal/repo/stock"
	"github.com/nhoxwy/pos-availability/internal/testinfra"
)

//go:embed testdata/stock_fixture.sql
var stockFixture string

var pg *testinfra.PostgresContainer

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	pg, err = testinfra.NewPostgres(ctx)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	pg.Cleanup(ctx)
	os.Exit(code)
}

func setupRepo(t *testing.T) stock.StockRepo {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, pg.Truncate(ctx))

	_, err := pg.Pool.Pool.Exec(ctx, stockFixture)
	require.NoError(t, err)

	return stock_repo.NewPgStockRepo(pg.Pool)
}

func TestAvailableByProduct_Subtree(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	t.Run("sums quants across the location subtree only", func(t *testing.T) {
		result, err := repo.AvailableByProduct(ctx, 12, 1, []int64{101, 102})

		require.NoError(t, err)
		// 8 at WH/Stock + 2.5 at the shelf; the 100 at the other warehouse
		// stays out, and product 102 belongs to another company.
		assert.Equal(t, map[int64]float64{101: 10.5}, result)
	})

	t.Run("root location sees nested stock", func(t *testing.T) {
		result, err := repo.AvailableByProduct(ctx, 1, 1, []int64{101})

		require.NoError(t, err)
		assert.Equal(t, map[int64]float64{101: 10.5}, result)
	})

	t.Run("leaf location sees only its own quant", func(t *testing.T) {
		result, err := repo.AvailableByProduct(ctx, 13, 1, []int64{101})

		require.NoError(t, err)
		assert.Equal(t, map[int64]float64{101: 2.5}, result)
	})
}

func TestMoveEventIdempotency(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	event := stock.MoveEvent{
		EventID:        "move-int-1",
		ProductID:      101,
		SrcLocationID:  12,
		DestLocationID: 50,
		CompanyID:      1,
		Quantity:       2,
		OccurredAt:     time.Now().UTC(),
	}

	apply := func(e stock.MoveEvent) error {
		return repo.InTransaction(ctx, func(tx stock.TxStockRepo) error {
			if err := tx.CreateMoveEvent(ctx, e); err != nil {
				return err
			}
			return tx.AddQuantity(ctx, e.ProductID, e.SrcLocationID, e.CompanyID, -e.Quantity)
		})
	}

	require.NoError(t, apply(event))

	t.Run("duplicate event rolls back the whole transaction", func(t *testing.T) {
		err := apply(event)
		assert.ErrorIs(t, err, apperror.ErrMoveAlreadyStored)

		result, err := repo.AvailableByProduct(ctx, 12, 1, []int64{101})
		require.NoError(t, err)
		assert.Equal(t, 8.5, result[101], "quantity should reflect exactly one application")
	})

	t.Run("upsert creates the quant row when missing", func(t *testing.T) {
		err := repo.InTransaction(ctx, func(tx stock.TxStockRepo) error {
			return tx.AddQuantity(ctx, 102, 12, 1, 4)
		})
		require.NoError(t, err)

		result, err := repo.AvailableByProduct(ctx, 12, 1, []int64{102})
		require.NoError(t, err)
		assert.Equal(t, 4.0, result[102])
	})
}
