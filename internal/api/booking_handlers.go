package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/toolshare/toolshare-server/internal/models"
)

// CreateBooking handles POST /api/bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	booking, err := h.svc.CreateBooking(c.Request.Context(), sessionUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "booking": booking})
}

// ApproveBooking handles POST /api/bookings/:id/approve
func (h *Handler) ApproveBooking(c *gin.Context) {
	booking, err := h.svc.ApproveBooking(c.Request.Context(), sessionUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "booking": booking})
}

// RejectBooking handles POST /api/bookings/:id/reject
func (h *Handler) RejectBooking(c *gin.Context) {
	booking, err := h.svc.RejectBooking(c.Request.Context(), sessionUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "booking": booking})
}

// CompleteBooking handles POST /api/bookings/:id/complete
func (h *Handler) CompleteBooking(c *gin.Context) {
	booking, err := h.svc.CompleteBooking(c.Request.Context(), sessionUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "booking": booking})
}

// MyBookings handles GET /api/bookings
func (h *Handler) MyBookings(c *gin.Context) {
	bookings, err := h.svc.MyBookings(c.Request.Context(), sessionUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "bookings": bookings})
}

// MyLendingHistory handles GET /api/bookings/lending
func (h *Handler) MyLendingHistory(c *gin.Context) {
	bookings, err := h.svc.MyLendingHistory(c.Request.Context(), sessionUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "bookings": bookings})
}

// IncomingRequests handles GET /api/bookings/incoming
func (h *Handler) IncomingRequests(c *gin.Context) {
	bookings, err := h.svc.IncomingRequests(c.Request.Context(), sessionUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "bookings": bookings})
}

// ActiveBorrows handles GET /api/bookings/active
func (h *Handler) ActiveBorrows(c *gin.Context) {
	bookings, err := h.svc.ActiveBorrows(c.Request.Context(), sessionUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "bookings": bookings})
}

// Dashboard handles GET /api/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context(), sessionUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
