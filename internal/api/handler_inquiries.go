package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rgayashan/FindAMechanic/internal/booking"
	"github.com/rgayashan/FindAMechanic/internal/model"
)

type inquiryRequest struct {
	VehicleRegistration string    `json:"vehicleRegistration" binding:"required"`
	Name                string    `json:"name" binding:"required"`
	Email               string    `json:"email" binding:"required"`
	PhoneNumber         string    `json:"phoneNumber" binding:"required"`
	Message             string    `json:"message" binding:"required"`
	Date                time.Time `json:"date" binding:"required"`
}

// PostInquiry handles POST /api/mechanics/:id/inquiries.
func (h *Handler) PostInquiry(c *gin.Context) {
	tenantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid mechanic ID"})
		return
	}

	var req inquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	form := model.InquiryForm{
		VehicleRegistration: req.VehicleRegistration,
		Name:                req.Name,
		Email:               req.Email,
		PhoneNumber:         req.PhoneNumber,
		Message:             req.Message,
		Date:                &req.Date,
	}

	confirmation, err := h.submitter.Submit(c.Request.Context(), tenantID, form)
	if err != nil {
		c.AbortWithStatusJSON(statusForError(err), gin.H{"error": booking.StatusMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      booking.StatusMessage(nil),
		"confirmation": confirmation,
	})
}
