package catalog

import (
	"context"
	"fmt"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
)

type ProductService struct {
	productRepo ProductRepo
}

func NewProductService(productRepo ProductRepo) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) GetProductByID(ctx context.Context, id int64) (Product, error) {
	query, _ := NewProductsQueryBuilder().
		WithIDs(id).
		Build()

	products, err := s.productRepo.GetProducts(ctx, query)
	if err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	if len(products) == 0 {
		return Product{}, apperror.ErrProductNotFound
	}
	return products[0], nil
}

func (s *ProductService) GetProducts(ctx context.Context, query ProductsQuery) ([]Product, error) {
	products, err := s.productRepo.GetProducts(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("filter products: %w", err)
	}
	return products, nil
}
