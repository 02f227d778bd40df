package stock_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
	"github.com/nhoxwy/pos-availability/internal/domain/stock"
	"github.com/nhoxwy/pos-availability/pkg/postgres"
)

// PgStockRepo is the main stock repository
type PgStockRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgStockRepo(pg *postgres.Postgres) stock.StockRepo {
	return &PgStockRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgStockRepo) InTransaction(ctx context.Context, fn func(repo stock.TxStockRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetQuants(ctx context.Context, query *stock.QuantsQuery) ([]stock.Quant, error) {
	sql, args := r.buildQuantsQuery(query)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query quants: %w", err)
	}
	defer rows.Close()

	return parseQuantRows(rows)
}

func (r *repo) GetLocation(ctx context.Context, id int64) (stock.Location, error) {
	query, args, err := r.builder.
		Select("id", "name", "complete_name", "parent_id", "parent_path", "usage", "company_id", "active", "created_at").
		From("stock_locations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return stock.Location{}, fmt.Errorf("build location query: %w", err)
	}

	row := r.db.QueryRow(ctx, query, args...)
	location, err := parseLocationRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stock.Location{}, apperror.ErrLocationNotFound
		}
		return stock.Location{}, fmt.Errorf("scan location row: %w", err)
	}
	return location, nil
}

// AvailableByProduct runs the grouped aggregation behind the POS payload:
// SUM(quantity) per product over every quant whose location lies in the
// subtree rooted at locationID. Subtree membership is a parent_path prefix
// match against the root's own path.
func (r *repo) AvailableByProduct(ctx context.Context, locationID, companyID int64, productIDs []int64) (map[int64]float64, error) {
	if len(productIDs) == 0 {
		return map[int64]float64{}, nil
	}

	query, args, err := r.builder.
		Select("sq.product_id", "COALESCE(SUM(sq.quantity), 0) AS quantity").
		From("stock_quants sq").
		Join("stock_locations sl ON sl.id = sq.location_id").
		Where(squirrel.Expr("sl.parent_path LIKE (SELECT parent_path FROM stock_locations WHERE id = ?) || '%'", locationID)).
		Where(squirrel.Eq{"sq.product_id": productIDs}).
		Where(squirrel.Eq{"sq.company_id": companyID}).
		GroupBy("sq.product_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build availability query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query availability: %w", err)
	}
	defer rows.Close()

	qtyByProduct := make(map[int64]float64, len(productIDs))
	for rows.Next() {
		var productID int64
		var quantity float64
		if err := rows.Scan(&productID, &quantity); err != nil {
			return nil, fmt.Errorf("scan availability row: %w", err)
		}
		qtyByProduct[productID] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate availability rows: %w", err)
	}

	return qtyByProduct, nil
}

func (r *repo) AddQuantity(ctx context.Context, productID, locationID, companyID int64, delta float64) error {
	query, args, err := r.builder.
		Insert("stock_quants").
		Columns("product_id", "location_id", "company_id", "quantity", "updated_at").
		Values(productID, locationID, companyID, delta, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (product_id, location_id, company_id) DO UPDATE SET quantity = stock_quants.quantity + EXCLUDED.quantity, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert quant query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("upsert quant: %w", err)
	}
	return nil
}

func (r *repo) CreateMoveEvent(ctx context.Context, event stock.MoveEvent) error {
	query, args, err := r.builder.
		Insert("stock_move_events").
		Columns("id", "product_id", "src_location_id", "dest_location_id", "company_id", "quantity", "occurred_at").
		Values(event.EventID, event.ProductID, nullableID(event.SrcLocationID), nullableID(event.DestLocationID), event.CompanyID, event.Quantity, event.OccurredAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert move event query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return apperror.ErrMoveAlreadyStored
		}
		return fmt.Errorf("create move event: %w", err)
	}
	return nil
}

func (r *repo) buildQuantsQuery(q *stock.QuantsQuery) (string, []interface{}) {
	query := r.builder.
		Select("id", "product_id", "location_id", "company_id", "quantity", "reserved_quantity", "updated_at").
		From("stock_quants").
		OrderBy("product_id", "location_id")

	if len(q.ProductIDs) > 0 {
		query = query.Where(squirrel.Eq{"product_id": q.ProductIDs})
	}

	if len(q.LocationIDs) > 0 {
		query = query.Where(squirrel.Eq{"location_id": q.LocationIDs})
	}

	if len(q.CompanyIDs) > 0 {
		query = query.Where(squirrel.Eq{"company_id": q.CompanyIDs})
	}

	sql, args, _ := query.ToSql()
	return sql, args
}

func nullableID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func parseQuantRows(rows pgx.Rows) ([]stock.Quant, error) {
	var quants []stock.Quant
	for rows.Next() {
		var q stock.Quant
		err := rows.Scan(&q.ID, &q.ProductID, &q.LocationID, &q.CompanyID, &q.Quantity, &q.ReservedQuantity, &q.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan quant row: %w", err)
		}
		quants = append(quants, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quant rows: %w", err)
	}

	return quants, nil
}

func parseLocationRow(row pgx.Row) (stock.Location, error) {
	var l stock.Location
	var rawUsage string
	err := row.Scan(&l.ID, &l.Name, &l.CompleteName, &l.ParentID, &l.ParentPath, &rawUsage, &l.CompanyID, &l.Active, &l.CreatedAt)
	if err != nil {
		return stock.Location{}, err
	}
	l.Usage = stock.Usage(rawUsage)
	return l, nil
}
