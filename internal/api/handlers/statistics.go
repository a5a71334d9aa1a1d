package handlers

import (
	"net/http"

	"assignment-workflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler serves request aggregates
type StatisticsHandler struct {
	assignments service.AssignmentServiceInterface
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(assignments service.AssignmentServiceInterface) *StatisticsHandler {
	return &StatisticsHandler{assignments: assignments}
}

// GetStatistics handles GET /statistics
// @Summary Request statistics
// @Description Counts by status and type and the mean hours from creation to approval
// @Tags statistics
// @Produce json
// @Param from query string false "Created on or after (RFC3339)"
// @Param to query string false "Created on or before (RFC3339)"
// @Success 200 {object} service.StatisticsResponse "Statistics"
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	from, ok := optionalTime(c, "from")
	if !ok {
		return
	}
	to, ok := optionalTime(c, "to")
	if !ok {
		return
	}

	result, err := h.assignments.GetStatistics(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
