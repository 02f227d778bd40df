package catalog

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
)

// Product is a sellable catalog item.
type Product struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	DefaultCode    *string      `json:"default_code,omitempty"`
	Barcode        *string      `json:"barcode,omitempty"`
	ListPrice      float64      `json:"list_price"`
	Type           ProductType  `json:"type"`
	IsStorable     bool         `json:"is_storable"`
	AvailableInPOS bool         `json:"available_in_pos"`
	CompanyID      int64        `json:"company_id"`
	Active         bool         `json:"active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Storable reports whether the product is stock-managed. Both signals are
// checked because older records may carry only the type.
func (p Product) Storable() bool {
	return p.IsStorable || p.Type == TypeStorable
}

type ProductType string

const (
	TypeConsumable ProductType = "consu"
	TypeService    ProductType = "service"
	TypeStorable   ProductType = "product"
)

var AvailableProductTypes = []ProductType{TypeConsumable, TypeService, TypeStorable}

func NewProductType(raw string) (ProductType, error) {
	if slices.Contains(AvailableProductTypes, ProductType(raw)) {
		return ProductType(raw), nil
	}
	return "", errors.New("invalid product type")
}

type Pagination struct {
	PageSize int

	PageNumber int
}

type ProductsQuery struct {
	IDs        []int64
	CompanyIDs []int64
	OnlyPOS    bool
	OnlyActive bool
	Pagination *Pagination
	SortBy     *string
	SortOrder  *string
}

func (q *ProductsQuery) Validate() error {
	if q.SortBy != nil && *q.SortBy != "name" && *q.SortBy != "created_at" && *q.SortBy != "updated_at" {
		return fmt.Errorf("invalid sort by: %s", *q.SortBy)
	}
	if q.SortOrder != nil && *q.SortOrder != "asc" && *q.SortOrder != "desc" {
		return fmt.Errorf("invalid sort order: %s", *q.SortOrder)
	}
	return nil
}

type ProductsQueryBuilder struct {
	query *ProductsQuery
}

func NewProductsQueryBuilder() *ProductsQueryBuilder {
	return &ProductsQueryBuilder{
		query: &ProductsQuery{},
	}
}

func (b *ProductsQueryBuilder) Build() (*ProductsQuery, error) {
	if err := b.query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidProductsQuery, err.Error())
	}
	return b.query, nil
}

func (b *ProductsQueryBuilder) WithIDs(ids ...int64) *ProductsQueryBuilder {
	b.query.IDs = ids
	return b
}

func (b *ProductsQueryBuilder) WithCompanyIDs(companyIDs ...int64) *ProductsQueryBuilder {
	b.query.CompanyIDs = companyIDs
	return b
}

func (b *ProductsQueryBuilder) OnlyPOS() *ProductsQueryBuilder {
	b.query.OnlyPOS = true
	return b
}

func (b *ProductsQueryBuilder) OnlyActive() *ProductsQueryBuilder {
	b.query.OnlyActive = true
	return b
}

func (b *ProductsQueryBuilder) WithSort(sortBy, sortOrder string) *ProductsQueryBuilder {
	b.query.SortBy = &sortBy
	b.query.SortOrder = &sortOrder
	return b
}

func (b *ProductsQueryBuilder) WithPagination(pagination Pagination) *ProductsQueryBuilder {
	b.query.Pagination = &pagination
	return b
}
