package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
	"github.com/nhoxwy/pos-availability/internal/domain/catalog"
)

type ProductHandler struct {
	service *catalog.ProductService
}

func NewProductHandler(s *catalog.ProductService) ProductHandler {
	return ProductHandler{service: s}
}

func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := parseID(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product_id"})
		return
	}

	res, err := h.service.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperror.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ProductHandler) Filter(c *gin.Context) {
	query, err := h.createQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.service.GetProducts(c.Request.Context(), *query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

type ProductFilterParams struct {
	IDs        string `form:"ids"`
	CompanyID  string `form:"company_id"`
	PosOnly    bool   `form:"pos_only"`
	ActiveOnly bool   `form:"active_only"`
	PageSize   int    `form:"limit" binding:"omitempty,min=0"`
	PageNumber int    `form:"offset" binding:"omitempty,min=0"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=name created_at updated_at"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

func (h *ProductHandler) createQuery(c *gin.Context) (*catalog.ProductsQuery, error) {
	var params ProductFilterParams

	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.PageSize == 0 {
		params.PageSize = 50
	}
	if params.SortBy == "" {
		params.SortBy = "name"
	}
	if params.SortOrder == "" {
		params.SortOrder = "asc"
	}

	builder := catalog.NewProductsQueryBuilder().
		WithSort(params.SortBy, params.SortOrder).
		WithPagination(catalog.Pagination{
			PageSize:   params.PageSize,
			PageNumber: params.PageNumber,
		})

	if params.IDs != "" {
		ids, err := parseIDList(params.IDs)
		if err != nil {
			return nil, fmt.Errorf("invalid ids: %w", err)
		}
		builder = builder.WithIDs(ids...)
	}
	if params.CompanyID != "" {
		companyIDs, err := parseIDList(params.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("invalid company_id: %w", err)
		}
		builder = builder.WithCompanyIDs(companyIDs...)
	}
	if params.PosOnly {
		builder = builder.OnlyPOS()
	}
	if params.ActiveOnly {
		builder = builder.OnlyActive()
	}

	query, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid filter params: %w", err)
	}

	return query, nil
}
