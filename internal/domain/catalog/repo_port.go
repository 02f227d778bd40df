package catalog

import "context"

type ProductRepo interface {
	GetProducts(ctx context.Context, query *ProductsQuery) ([]Product, error)
}
