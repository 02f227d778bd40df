package product_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/nhoxwy/pos-availability/internal/domain/catalog"
	"github.com/nhoxwy/pos-availability/pkg/postgres"
)

type PgProductRepo struct {
	pg      *postgres.Postgres
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgProductRepo(pg *postgres.Postgres) catalog.ProductRepo {
	return &PgProductRepo{
		pg:      pg,
		db:      pg.Pool,
		builder: pg.Builder,
	}
}

func (r *PgProductRepo) GetProducts(ctx context.Context, query *catalog.ProductsQuery) ([]catalog.Product, error) {
	sql, args := r.buildProductsQuery(query)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	return parseProductRows(rows)
}

func (r *PgProductRepo) buildProductsQuery(q *catalog.ProductsQuery) (string, []interface{}) {
	query := r.builder.
		Select("id", "name", "default_code", "barcode", "list_price", "type", "is_storable", "available_in_pos", "company_id", "active", "created_at", "updated_at").
		From("products")

	if len(q.IDs) > 0 {
		query = query.Where(squirrel.Eq{"id": q.IDs})
	}

	if len(q.CompanyIDs) > 0 {
		query = query.Where(squirrel.Eq{"company_id": q.CompanyIDs})
	}

	if q.OnlyPOS {
		query = query.Where(squirrel.Eq{"available_in_pos": true})
	}

	if q.OnlyActive {
		query = query.Where(squirrel.Eq{"active": true})
	}

	if q.SortBy != nil && q.SortOrder != nil {
		query = query.OrderBy(fmt.Sprintf("%s %s", *q.SortBy, *q.SortOrder))
	}

	if q.Pagination != nil {
		offset := (q.Pagination.PageNumber - 1) * q.Pagination.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Limit(uint64(q.Pagination.PageSize)).Offset(uint64(offset))
	}

	sql, args, _ := query.ToSql()
	return sql, args
}

func parseProductRows(rows pgx.Rows) ([]catalog.Product, error) {
	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		var rawType string
		err := rows.Scan(&p.ID, &p.Name, &p.DefaultCode, &p.Barcode, &p.ListPrice, &rawType, &p.IsStorable, &p.AvailableInPOS, &p.CompanyID, &p.Active, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}

		productType, err := catalog.NewProductType(rawType)
		if err != nil {
			return nil, fmt.Errorf("invalid product type in database: %w", err)
		}
		p.Type = productType

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}
