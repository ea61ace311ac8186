package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the directory endpoints onto a gin engine.
func NewRouter(h *DirectoryHandler) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	api := router.Group("/api")

	wizard := api.Group("/wizard")
	{
		wizard.GET("/trades", h.Trades)
		wizard.POST("/step1", h.Step1)
		wizard.POST("/step2", h.Step2)
		wizard.POST("/step3", h.Step3)
		wizard.POST("/step4", h.Step4)
		wizard.POST("/step5", h.Step5)
	}

	search := api.Group("/search")
	{
		search.GET("/list", h.List)
		search.GET("/subcontractors", h.Search)
	}

	api.GET("/site/:identifier", h.Site)

	return router
}
