package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tradesite/directory/internal/directory/models"
)

const defaultPageSize = 10

// List serves the plain paginated listing: the same operation as Search
// with empty filters.
func (h *DirectoryHandler) List(c *gin.Context) {
	h.search(c, &models.SearchFilter{
		Page:  intQuery(c, "page", 1),
		Limit: intQuery(c, "limit", defaultPageSize),
	})
}

// Search serves the filtered search: free text on name/ABN plus a
// trade-id filter.
func (h *DirectoryHandler) Search(c *gin.Context) {
	h.search(c, &models.SearchFilter{
		Query:    c.Query("q"),
		TradeIDs: parseTradeIDs(c.Query("tradeIds")),
		Page:     intQuery(c, "page", 1),
		Limit:    intQuery(c, "limit", defaultPageSize),
	})
}

func (h *DirectoryHandler) search(c *gin.Context, filter *models.SearchFilter) {
	result, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Search failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Search failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"subcontractors": toSubcontractorResponses(result.Items),
		"pagination":     toPagination(result),
	})
}

// intQuery reads an integer query parameter, falling back to the
// default when absent or unparsable. Range clamping happens in the
// service layer.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// parseTradeIDs splits a comma-separated id list, dropping segments
// that are not positive integers.
func parseTradeIDs(raw string) []uint {
	if raw == "" {
		return nil
	}
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
