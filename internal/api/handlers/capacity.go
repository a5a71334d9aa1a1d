package handlers

import (
	"net/http"
	"strconv"

	"assignment-workflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CapacityHandler handles crew capacity queries
type CapacityHandler struct {
	assignments service.AssignmentServiceInterface
}

// NewCapacityHandler creates a new capacity handler
func NewCapacityHandler(assignments service.AssignmentServiceInterface) *CapacityHandler {
	return &CapacityHandler{assignments: assignments}
}

// CheckCapacity handles GET /capacity/check
// @Summary Check crew availability
// @Description Sum the confirmed allocations of a crew overlapping a window
// @Tags capacity
// @Produce json
// @Param crew_id query string true "Crew ID (UUID)"
// @Param start_date query string true "Window start (RFC3339)"
// @Param end_date query string true "Window end (RFC3339)"
// @Success 200 {object} service.CapacityResult "Availability"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 404 {object} ErrorResponse "Crew not found"
// @Security BearerAuth
// @Router /capacity/check [get]
func (h *CapacityHandler) CheckCapacity(c *gin.Context) {
	crewID, ok := optionalUUID(c, "crew_id")
	if !ok {
		return
	}
	start, ok := optionalTime(c, "start_date")
	if !ok {
		return
	}
	end, ok := optionalTime(c, "end_date")
	if !ok {
		return
	}
	if crewID == nil || start == nil || end == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "crew_id, start_date and end_date are required"})
		return
	}

	result, err := h.assignments.CheckCapacity(c.Request.Context(), *crewID, *start, *end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetForecast handles GET /capacity/forecast
// @Summary Daily capacity forecast
// @Description Utilization per UTC day from today. Without crew_id each day reports its busiest crew.
// @Tags capacity
// @Produce json
// @Param crew_id query string false "Crew ID (UUID)"
// @Param days query int false "Horizon in days" default(30)
// @Success 200 {object} service.ForecastResult "Forecast"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 404 {object} ErrorResponse "Crew not found"
// @Security BearerAuth
// @Router /capacity/forecast [get]
func (h *CapacityHandler) GetForecast(c *gin.Context) {
	crewID, ok := optionalUUID(c, "crew_id")
	if !ok {
		return
	}

	days := 0
	if v := c.Query("days"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days must be an integer"})
			return
		}
		days = d
	}

	result, err := h.assignments.GetForecast(c.Request.Context(), crewID, days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetUtilization handles GET /capacity/utilization
// @Summary Crew utilization summary
// @Tags capacity
// @Produce json
// @Param crew_id query []string false "Crew IDs (UUID); all active crews when omitted" collectionFormat(multi)
// @Success 200 {array} service.CrewUtilization "Utilization per crew"
// @Failure 400 {object} ErrorResponse "Invalid crew ID"
// @Security BearerAuth
// @Router /capacity/utilization [get]
func (h *CapacityHandler) GetUtilization(c *gin.Context) {
	var crewIDs []uuid.UUID
	for _, v := range c.QueryArray("crew_id") {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid crew_id"})
			return
		}
		crewIDs = append(crewIDs, id)
	}

	result, err := h.assignments.GetCrewUtilization(c.Request.Context(), crewIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
