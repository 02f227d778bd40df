package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhoxwy/pos-availability/internal/domain/stock"
)

type StockHandler struct {
	service *stock.StockService
}

func NewStockHandler(s *stock.StockService) StockHandler {
	return StockHandler{service: s}
}

func (h *StockHandler) Quants(c *gin.Context) {
	query, err := h.createQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.service.GetQuants(c.Request.Context(), *query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

type QuantFilterParams struct {
	ProductIDs  string `form:"product_ids"`
	LocationIDs string `form:"location_ids"`
	CompanyID   string `form:"company_id"`
}

func (h *StockHandler) createQuery(c *gin.Context) (*stock.QuantsQuery, error) {
	var params QuantFilterParams

	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	builder := stock.NewQuantsQueryBuilder()

	if params.ProductIDs != "" {
		ids, err := parseIDList(params.ProductIDs)
		if err != nil {
			return nil, fmt.Errorf("invalid product_ids: %w", err)
		}
		builder = builder.WithProductIDs(ids...)
	}
	if params.LocationIDs != "" {
		ids, err := parseIDList(params.LocationIDs)
		if err != nil {
			return nil, fmt.Errorf("invalid location_ids: %w", err)
		}
		builder = builder.WithLocationIDs(ids...)
	}
	if params.CompanyID != "" {
		ids, err := parseIDList(params.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("invalid company_id: %w", err)
		}
		builder = builder.WithCompanyIDs(ids...)
	}

	return builder.Build()
}
