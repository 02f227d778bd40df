package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
	"github.com/nhoxwy/pos-availability/internal/domain/pos"
)

type PosDataHandler struct {
	service *pos.PosDataService
}

func NewPosDataHandler(s *pos.PosDataService) PosDataHandler {
	return PosDataHandler{service: s}
}

// LoadData serves the full POS data payload for a config: every sellable
// product with pos_available_qty filled in for storable ones.
func (h *PosDataHandler) LoadData(c *gin.Context) {
	configID, err := parseID(c.Param("config_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid config_id"})
		return
	}

	payload, err := h.service.LoadPosData(c.Request.Context(), configID)
	if err != nil {
		if errors.Is(err, apperror.ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// Availability serves quantities only, for clients refreshing a subset of
// products without a full data reload.
func (h *PosDataHandler) Availability(c *gin.Context) {
	configID, err := parseID(c.Param("config_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid config_id"})
		return
	}

	productIDs, err := parseIDList(c.Query("product_ids"))
	if err != nil || len(productIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid product_ids"})
		return
	}

	qtyByProduct, err := h.service.AvailabilityForProducts(c.Request.Context(), configID, productIDs)
	if err != nil {
		if errors.Is(err, apperror.ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		if errors.Is(err, apperror.ErrNoSourceLocation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"config_id": configID, "available": qtyByProduct})
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
