package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/toolshare/toolshare-server/internal/models"
)

// MyTools handles GET /api/tools
func (h *Handler) MyTools(c *gin.Context) {
	tools, err := h.svc.MyTools(c.Request.Context(), sessionUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "tools": tools})
}

// CreateTool handles POST /api/tools
func (h *Handler) CreateTool(c *gin.Context) {
	var req models.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tool, err := h.svc.CreateTool(c.Request.Context(), sessionUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "tool": tool})
}

// UpdateTool handles PUT /api/tools/:id
func (h *Handler) UpdateTool(c *gin.Context) {
	var req models.UpdateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tool, err := h.svc.UpdateTool(c.Request.Context(), sessionUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "tool": tool})
}

// DeleteTool handles DELETE /api/tools/:id
func (h *Handler) DeleteTool(c *gin.Context) {
	if err := h.svc.DeleteTool(c.Request.Context(), sessionUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// AnalyzeToolImage handles POST /api/tools/analyze. The annotation service
// is best-effort: an unavailable service yields an empty suggestion, never
// an error.
func (h *Handler) AnalyzeToolImage(c *gin.Context) {
	var req models.AnalyzeToolImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	suggestion := h.svc.AnalyzeToolImage(c.Request.Context(), req.Image)
	c.JSON(http.StatusOK, models.AnalyzeToolImageResponse{
		Status:     "success",
		Suggestion: suggestion,
	})
}

// MarketTools handles GET /api/market
func (h *Handler) MarketTools(c *gin.Context) {
	market, err := h.svc.MarketTools(c.Request.Context(), sessionUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "marketTools": market})
}
