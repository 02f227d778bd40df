//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/go-querystring/query"

	"github.com/nhoxwy/pos-availability/config"
	"github.com/nhoxwy/pos-availability/internal/app"
	apphttp "github.com/nhoxwy/pos-availability/internal/controller/http"
	"github.com/nhoxwy/pos-availability/internal/controller/http/handlers"
	"github.com/nhoxwy/pos-availability/internal/domain/catalog"
	"github.com/nhoxwy/pos-availability/internal/domain/pos"
	"github.com/nhoxwy/pos-availability/internal/domain/stock"
	posconfig_repo "github.com/nhoxwy/pos-availability/internal/repo/posconfig"
	product_repo "github.com/nhoxwy/pos-availability/internal/repo/product"
	stock_repo "github.com/nhoxwy/pos-availability/internal/repo/stock"
	"github.com/nhoxwy/pos-availability/internal/webhook"
	"github.com/nhoxwy/pos-availability/pkg/health"
	"github.com/nhoxwy/pos-availability/pkg/logger"
	"github.com/nhoxwy/pos-availability/pkg/postgres"
)

//go:embed testdata/catalog_stock_fixture.sql
var baseFixture string

func applyBaseFixture(t *testing.T, tx postgres.Executor) {
	t.Helper()
	_, err := tx.Exec(context.Background(), baseFixture)
	require.NoError(t, err)
}

func setupTestServer(t *testing.T) (*httptest.Server, *postgres.Postgres) {
	cfg, err := config.New()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	l := logger.New(cfg.LogLevel)

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		t.Fatalf("Failed to create postgres pool: %v", err)
	}

	err = app.ApplyMigrations(cfg.PgURL, app.MIGRATION_FS)
	if err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	_, err = pool.Pool.Exec(context.Background(), "TRUNCATE TABLE stock_move_events, stock_quants, pos_configs, picking_types, warehouses, stock_locations, products CASCADE")
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	stockRepo := stock_repo.NewPgStockRepo(pool)
	productRepo := product_repo.NewPgProductRepo(pool)
	configRepo := posconfig_repo.NewPgPosConfigRepo(pool)

	stockService := stock.NewStockService(stockRepo)
	productService := catalog.NewProductService(productRepo)
	posDataService := pos.NewPosDataService(configRepo, productRepo, stockRepo, nil, l)

	processor := webhook.NewSyncProcessor(stockService)

	router := apphttp.NewRouter(
		handlers.NewPosDataHandler(posDataService),
		handlers.NewProductHandler(productService),
		handlers.NewStockHandler(stockService),
		handlers.NewWebhookHandler(processor),
		health.NewRegistry(health.NewPostgresChecker(pool.Pool)),
	)

	engine := app.NewGinEngine(l)
	router.SetUp(engine)

	return httptest.NewServer(engine), pool
}

func TestLoadPosDataFlow(t *testing.T) {
	server, pool := setupTestServer(t)
	defer server.Close()

	applyBaseFixture(t, pool.Pool)

	t.Run("payload carries summed subtree quantities", func(t *testing.T) {
		payload := GET[pos.Payload](t, server.URL, "/pos/configs/7/data", nil, http.StatusOK)

		assert.Equal(t, int64(7), payload.ConfigID)
		// Sorted by name: Chips, Cola, Gift wrap. Backroom-only and the other
		// company's product never appear.
		require.Len(t, payload.Products, 3)

		chips := payload.Products[0]
		assert.Equal(t, int64(102), chips.ID)
		require.NotNil(t, chips.PosAvailableQty, "storable product with no quant in the subtree still carries a quantity")
		assert.Equal(t, 0.0, *chips.PosAvailableQty)

		cola := payload.Products[1]
		assert.Equal(t, int64(101), cola.ID)
		require.NotNil(t, cola.PosAvailableQty)
		assert.Equal(t, 10.5, *cola.PosAvailableQty, "quantities at WH/Stock and WH/Stock/Shelf A should both count")

		giftWrap := payload.Products[2]
		assert.Equal(t, int64(103), giftWrap.ID)
		assert.False(t, giftWrap.IsStorable)
		assert.Nil(t, giftWrap.PosAvailableQty)
	})

	t.Run("warehouse lot stock is the fallback source", func(t *testing.T) {
		res := getAvailability(t, server.URL, 8, "102")

		assert.Equal(t, 5.0, res.Available[102])
	})

	t.Run("config without source location loads with null quantities", func(t *testing.T) {
		payload := GET[pos.Payload](t, server.URL, "/pos/configs/9/data", nil, http.StatusOK)

		require.Len(t, payload.Products, 3)
		for _, p := range payload.Products {
			assert.Nil(t, p.PosAvailableQty)
		}
	})

	t.Run("unknown config is a 404", func(t *testing.T) {
		GET[map[string]any](t, server.URL, "/pos/configs/999/data", nil, http.StatusNotFound)
	})

	t.Run("availability without source location is a 422", func(t *testing.T) {
		u, _ := url.Parse(server.URL)
		u.Path = "/pos/configs/9/availability"
		u.RawQuery = "product_ids=101"

		resp, err := http.Get(u.String())
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestStockMoveFlow(t *testing.T) {
	server, pool := setupTestServer(t)
	defer server.Close()

	applyBaseFixture(t, pool.Pool)

	sale := map[string]interface{}{
		"event_id":        "move-sale-1",
		"product_id":      101,
		"src_location_id": 12,
		// Customer locations hold no quants; only the source side changes.
		"dest_location_id": 50,
		"company_id":       1,
		"quantity":         2,
		"occurred_at":      time.Now().Format(time.RFC3339),
	}

	t.Run("sale decrements availability", func(t *testing.T) {
		sendStockMove(t, server, sale, http.StatusAccepted)

		res := getAvailability(t, server.URL, 7, "101")
		assert.Equal(t, 8.5, res.Available[101])
	})

	t.Run("replayed event is rejected and changes nothing", func(t *testing.T) {
		sendStockMove(t, server, sale, http.StatusConflict)

		res := getAvailability(t, server.URL, 7, "101")
		assert.Equal(t, 8.5, res.Available[101])
	})

	t.Run("receipt increments availability", func(t *testing.T) {
		receipt := map[string]interface{}{
			"event_id":         "move-receipt-1",
			"product_id":       101,
			"dest_location_id": 12,
			"company_id":       1,
			"quantity":         4,
			"occurred_at":      time.Now().Format(time.RFC3339),
		}
		sendStockMove(t, server, receipt, http.StatusAccepted)

		res := getAvailability(t, server.URL, 7, "101")
		assert.Equal(t, 12.5, res.Available[101])
	})

	t.Run("move without locations is a 422", func(t *testing.T) {
		invalid := map[string]interface{}{
			"event_id":    "move-invalid-1",
			"product_id":  101,
			"company_id":  1,
			"quantity":    1,
			"occurred_at": time.Now().Format(time.RFC3339),
		}
		sendStockMove(t, server, invalid, http.StatusUnprocessableEntity)
	})

	t.Run("move to unknown location is a 404", func(t *testing.T) {
		unknown := map[string]interface{}{
			"event_id":         "move-unknown-loc-1",
			"product_id":       101,
			"dest_location_id": 9999,
			"company_id":       1,
			"quantity":         1,
			"occurred_at":      time.Now().Format(time.RFC3339),
		}
		sendStockMove(t, server, unknown, http.StatusNotFound)
	})
}

type productFilterQuery struct {
	CompanyID  string `url:"company_id,omitempty"`
	PosOnly    bool   `url:"pos_only,omitempty"`
	ActiveOnly bool   `url:"active_only,omitempty"`
	Limit      int    `url:"limit,omitempty"`
	Offset     int    `url:"offset,omitempty"`
	SortBy     string `url:"sort_by,omitempty"`
	SortOrder  string `url:"sort_order,omitempty"`
}

func TestProductFilterFlow(t *testing.T) {
	server, pool := setupTestServer(t)
	defer server.Close()

	applyBaseFixture(t, pool.Pool)

	t.Run("filters POS products per company", func(t *testing.T) {
		filter := productFilterQuery{
			CompanyID:  "1",
			PosOnly:    true,
			ActiveOnly: true,
			SortBy:     "name",
			SortOrder:  "asc",
		}

		products := GET[[]catalog.Product](t, server.URL, "/products", filter, http.StatusOK)

		require.Len(t, products, 3)
		assert.Equal(t, "Chips", products[0].Name)
		assert.Equal(t, "Cola", products[1].Name)
		assert.Equal(t, "Gift wrap", products[2].Name)
	})

	t.Run("rejects unknown sort field", func(t *testing.T) {
		filter := productFilterQuery{CompanyID: "1", SortBy: "list_price"}

		u, _ := url.Parse(server.URL)
		u.Path = "/products"
		v, _ := query.Values(filter)
		u.RawQuery = v.Encode()

		resp, err := http.Get(u.String())
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("gets single product by id", func(t *testing.T) {
		product := GET[catalog.Product](t, server.URL, "/products/101", nil, http.StatusOK)

		assert.Equal(t, "Cola", product.Name)
		assert.True(t, product.Storable())
	})

	t.Run("unknown product is a 404", func(t *testing.T) {
		GET[map[string]any](t, server.URL, "/products/999", nil, http.StatusNotFound)
	})
}

type quantFilterQuery struct {
	ProductIDs  string `url:"product_ids,omitempty"`
	LocationIDs string `url:"location_ids,omitempty"`
	CompanyID   string `url:"company_id,omitempty"`
}

func TestQuantsFlow(t *testing.T) {
	server, pool := setupTestServer(t)
	defer server.Close()

	applyBaseFixture(t, pool.Pool)

	t.Run("lists quants per product", func(t *testing.T) {
		quants := GET[[]stock.Quant](t, server.URL, "/stock/quants", quantFilterQuery{ProductIDs: "101"}, http.StatusOK)

		require.Len(t, quants, 2)
		assert.Equal(t, int64(12), quants[0].LocationID)
		assert.Equal(t, int64(13), quants[1].LocationID)
	})

	t.Run("requires at least one filter", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/stock/quants")
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

type availabilityResponse struct {
	ConfigID  int64             `json:"config_id"`
	Available map[int64]float64 `json:"available"`
}

func getAvailability(t *testing.T, baseURL string, configID int64, productIDs string) availabilityResponse {
	t.Helper()

	u, _ := url.Parse(baseURL)
	u.Path = "/pos/configs/" + strconv.FormatInt(configID, 10) + "/availability"
	u.RawQuery = "product_ids=" + productIDs

	resp, err := http.Get(u.String())
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res availabilityResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func sendStockMove(t *testing.T, server *httptest.Server, payload map[string]interface{}, expectedStatus int) {
	t.Helper()

	raw, _ := json.Marshal(payload)
	resp, err := http.Post(server.URL+"/webhooks/stock/moves", "application/json", bytes.NewBuffer(raw))
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, expectedStatus, resp.StatusCode)
}

func GET[T any](t *testing.T, baseUrl, path string, queryPayload any, expectedStatus int) T {
	t.Helper()

	var res T

	u, _ := url.Parse(baseUrl)
	u.Path = path
	if queryPayload != nil {
		v, _ := query.Values(queryPayload)
		u.RawQuery = v.Encode()
	}

	resp, err := http.Get(u.String())
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, expectedStatus, resp.StatusCode)

	err = json.NewDecoder(resp.Body).Decode(&res)
	require.NoError(t, err)
	return res
}
