package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	e "github.com/tradesite/directory/internal/directory/errors"
)

// Site resolves a public profile by slug, falling back to the numeric
// id when no such slug exists.
func (h *DirectoryHandler) Site(c *gin.Context) {
	identifier := c.Param("identifier")

	sub, err := h.service.GetSite(c.Request.Context(), identifier)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Site not found")
			return
		}
		h.logger.Error("Site lookup failed", zap.Error(err), zap.String("identifier", identifier))
		respondError(c, http.StatusInternalServerError, "Site lookup failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "site": toSiteResponse(sub)})
}
