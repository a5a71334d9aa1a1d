package handlers

import (
	"net/http"
	"strconv"

	"assignment-workflow-backend/internal/auth"
	"assignment-workflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler handles approval decisions and approver inboxes
type ApprovalHandler struct {
	assignments service.AssignmentServiceInterface
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(assignments service.AssignmentServiceInterface) *ApprovalHandler {
	return &ApprovalHandler{assignments: assignments}
}

// SubmitDecision handles POST /assignments/:id/decisions
// @Summary Decide the pending approval level
// @Description Approve or reject the level the request is waiting on. The caller must be the assigned approver or hold the approving role.
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param decision body service.DecisionRequest true "Decision"
// @Success 200 {object} models.ApprovalRecord "Decided approval"
// @Failure 400 {object} ErrorResponse "Invalid decision"
// @Failure 403 {object} ErrorResponse "Not the assigned approver"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request is not awaiting this decision"
// @Failure 422 {object} ErrorResponse "No approver available for the next level"
// @Security BearerAuth
// @Router /assignments/{id}/decisions [post]
func (h *ApprovalHandler) SubmitDecision(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	var req service.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	actor, _ := auth.GetActorID(c)
	approval, err := h.assignments.SubmitDecision(c.Request.Context(), id, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, approval)
}

// GetPendingApprovals handles GET /approvals/pending
// @Summary List approvals waiting on the caller
// @Tags approvals
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PendingApprovalsResponse "Pending approvals"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /approvals/pending [get]
func (h *ApprovalHandler) GetPendingApprovals(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	actor, _ := auth.GetActorID(c)
	result, err := h.assignments.GetPendingApprovals(c.Request.Context(), actor, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
