package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// mechanicListResponse is the envelope for GET /api/mechanics. HasMore
// follows the underfull-page rule: a full page means another one may
// exist.
type mechanicListResponse struct {
	Mechanics any  `json:"mechanics"`
	Page      int  `json:"page"`
	PageSize  int  `json:"pageSize"`
	HasMore   bool `json:"hasMore"`
}

// GetMechanics handles GET /api/mechanics.
func (h *Handler) GetMechanics(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(h.defaultPageSize)))
	if err != nil || pageSize < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid pageSize"})
		return
	}
	search := c.Query("search")

	mechanics, err := h.directory.ListMechanics(c.Request.Context(), page, pageSize, search)
	if err != nil {
		c.AbortWithStatusJSON(statusForError(err), gin.H{"error": "failed to load mechanics"})
		return
	}

	c.JSON(http.StatusOK, mechanicListResponse{
		Mechanics: mechanics,
		Page:      page,
		PageSize:  pageSize,
		HasMore:   len(mechanics) >= pageSize,
	})
}

// GetMechanicDetails handles GET /api/mechanics/:id.
func (h *Handler) GetMechanicDetails(c *gin.Context) {
	tenantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid mechanic ID"})
		return
	}

	details, err := h.directory.MechanicDetails(c.Request.Context(), tenantID)
	if err != nil {
		status := statusForError(err)
		msg := "failed to load mechanic details"
		if status == http.StatusNotFound {
			msg = "mechanic not found"
		}
		c.AbortWithStatusJSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, details)
}
