package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/toolshare/toolshare-server/internal/models"
	"github.com/toolshare/toolshare-server/internal/service"
)

// Handler wires the HTTP surface to the service layer.
type Handler struct {
	svc service.Service
}

// NewHandler creates a new API handler.
func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// SetupRoutes registers all API routes on the router.
func (h *Handler) SetupRoutes(router *gin.Engine) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/login", h.Login)
	}

	api := router.Group("/api")
	api.Use(AuthMiddleware())
	{
		api.GET("/users/me", h.Me)
		api.GET("/users", h.ListUsers)

		api.GET("/tools", h.MyTools)
		api.POST("/tools", h.CreateTool)
		api.POST("/tools/analyze", h.AnalyzeToolImage)
		api.PUT("/tools/:id", h.UpdateTool)
		api.DELETE("/tools/:id", h.DeleteTool)

		api.GET("/market", h.MarketTools)

		api.GET("/groups", h.MyGroups)
		api.POST("/groups", h.CreateGroup)
		api.POST("/groups/join", h.JoinGroup)
		api.PUT("/groups/:id", h.UpdateGroup)
		api.DELETE("/groups/:id", h.DeleteGroup)
		api.GET("/groups/:id/invite", h.GroupInvite)
		api.POST("/groups/:id/tools", h.ShareTools)
		api.DELETE("/groups/:id/members/:userId", h.RemoveMember)

		api.GET("/bookings", h.MyBookings)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/lending", h.MyLendingHistory)
		api.GET("/bookings/incoming", h.IncomingRequests)
		api.GET("/bookings/active", h.ActiveBorrows)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/reject", h.RejectBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)

		api.GET("/dashboard", h.Dashboard)
	}
}

// respondError maps service errors onto the HTTP error taxonomy.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", err)
	case errors.Is(err, service.ErrForbidden):
		writeError(c, http.StatusForbidden, "FORBIDDEN", err)
	case errors.Is(err, service.ErrInvalidState):
		writeError(c, http.StatusConflict, "INVALID_STATE", err)
	case errors.Is(err, service.ErrEmailTaken):
		writeError(c, http.StatusConflict, "EMAIL_TAKEN", err)
	case errors.Is(err, service.ErrValidation):
		writeError(c, http.StatusBadRequest, "VALIDATION", err)
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err)
	default:
		writeError(c, http.StatusInternalServerError, "INTERNAL", err)
	}
}

func writeError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, models.ErrorResponse{
		Status:  "error",
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(c *gin.Context, err error) {
	writeError(c, http.StatusBadRequest, "BAD_REQUEST", err)
}
