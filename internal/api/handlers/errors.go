package handlers

import (
	"errors"
	"net/http"

	apperrors "assignment-workflow-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string            `json:"error" example:"error message"`
	Details []FieldViolation  `json:"details,omitempty"`
	Extra   map[string]string `json:"extra,omitempty"`
}

// FieldViolation is one failed validation rule
type FieldViolation struct {
	Field   string `json:"field" example:"priority_level"`
	Message string `json:"message" example:"must be at most 5"`
}

// respondError maps the error taxonomy onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var verrs apperrors.ValidationErrors
	if errors.As(err, &verrs) {
		resp := ErrorResponse{Error: "validation failed"}
		for _, v := range verrs {
			resp.Details = append(resp.Details, FieldViolation{Field: v.Field, Message: v.Message})
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	var conflict *apperrors.CapacityConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":                   err.Error(),
			"crew_id":                 conflict.CrewID,
			"available_pct":           conflict.AvailablePct,
			"current_utilization_pct": conflict.UtilizationPct,
		})
		return
	}

	c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidDecision),
		errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.Is(err, apperrors.ErrInvalidPaginationParams),
		errors.Is(err, apperrors.ErrBulkLimitExceeded):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsState(err),
		apperrors.IsStaleState(err),
		errors.Is(err, apperrors.ErrLockNotAcquired):
		return http.StatusConflict
	case apperrors.IsRouting(err):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
