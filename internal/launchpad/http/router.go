package http

import "github.com/gin-gonic/gin"

// Register registers the launchpad routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/projects", h.CreateProject)
	rg.GET("/projects", h.ListProjects)
	rg.GET("/projects/:id", h.GetProject)
	rg.POST("/projects/:id/fund", h.FundProject)
	rg.POST("/projects/:id/launch", h.LaunchProject)

	rg.POST("/swap", h.SwapTokens)
	rg.GET("/quote", h.GetQuote)
	rg.GET("/tokens", h.ListTokens)
}
