package stock

import (
	"fmt"
	"time"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
)

// Location is a node in the warehouse location tree. ParentPath is a
// materialized path of ancestor IDs ("1/4/9/"), so a subtree is every
// location whose path starts with the root's path.
type Location struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CompleteName string    `json:"complete_name"`
	ParentID     *int64    `json:"parent_id,omitempty"`
	ParentPath   string    `json:"parent_path"`
	Usage        Usage     `json:"usage"`
	CompanyID    int64     `json:"company_id"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

type Usage string

const (
	UsageInternal  Usage = "internal"
	UsageSupplier  Usage = "supplier"
	UsageCustomer  Usage = "customer"
	UsageInventory Usage = "inventory"
)

// Quant is the on-hand quantity of one product at one location.
type Quant struct {
	ID               int64     `json:"id"`
	ProductID        int64     `json:"product_id"`
	LocationID       int64     `json:"location_id"`
	CompanyID        int64     `json:"company_id"`
	Quantity         float64   `json:"quantity"`
	ReservedQuantity float64   `json:"reserved_quantity"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type QuantsQuery struct {
	ProductIDs  []int64
	LocationIDs []int64
	CompanyIDs  []int64
}

func (q *QuantsQuery) Validate() error {
	if len(q.ProductIDs) == 0 && len(q.LocationIDs) == 0 && len(q.CompanyIDs) == 0 {
		return fmt.Errorf("%w: at least one filter is required", apperror.ErrInvalidQuantsQuery)
	}
	return nil
}

type QuantsQueryBuilder struct {
	query *QuantsQuery
}

func NewQuantsQueryBuilder() *QuantsQueryBuilder {
	return &QuantsQueryBuilder{
		query: &QuantsQuery{},
	}
}

func (b *QuantsQueryBuilder) Build() (*QuantsQuery, error) {
	if err := b.query.Validate(); err != nil {
		return nil, err
	}
	return b.query, nil
}

func (b *QuantsQueryBuilder) WithProductIDs(ids ...int64) *QuantsQueryBuilder {
	b.query.ProductIDs = ids
	return b
}

func (b *QuantsQueryBuilder) WithLocationIDs(ids ...int64) *QuantsQueryBuilder {
	b.query.LocationIDs = ids
	return b
}

func (b *QuantsQueryBuilder) WithCompanyIDs(ids ...int64) *QuantsQueryBuilder {
	b.query.CompanyIDs = ids
	return b
}
