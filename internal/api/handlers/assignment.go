package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"assignment-workflow-backend/internal/auth"
	"assignment-workflow-backend/internal/database/models"
	"assignment-workflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for assignment requests
type AssignmentHandler struct {
	assignments service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignments service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// BulkCreateRequest wraps the drafts of a bulk create
type BulkCreateRequest struct {
	Requests []service.CreateAssignmentRequest `json:"requests"`
}

// CreateAssignment handles POST /assignments
// @Summary Create an assignment request
// @Description Validate a draft, admit it against crew capacity and open its approval chain
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body service.CreateAssignmentRequest true "Assignment draft"
// @Success 201 {object} service.AssignmentRequestView "Successfully created request"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 409 {object} map[string]interface{} "Insufficient crew capacity"
// @Failure 422 {object} ErrorResponse "No approver available"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	actor, _ := auth.GetActorID(c)
	view, err := h.assignments.CreateRequest(c.Request.Context(), &req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// BulkCreateAssignments handles POST /assignments/bulk
// @Summary Create up to 50 assignment requests
// @Description Each draft is created independently; failures are reported per index
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body BulkCreateRequest true "Assignment drafts"
// @Success 200 {object} service.BulkCreateResult "Per-draft results"
// @Failure 400 {object} ErrorResponse "Invalid request or too many drafts"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /assignments/bulk [post]
func (h *AssignmentHandler) BulkCreateAssignments(c *gin.Context) {
	var req BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	actor, _ := auth.GetActorID(c)
	result, err := h.assignments.BulkCreate(c.Request.Context(), req.Requests, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListAssignments handles GET /assignments
// @Summary List assignment requests
// @Description Search requests with filters, sorting and pagination
// @Tags assignments
// @Produce json
// @Param status query string false "Status filter"
// @Param type query string false "Assignment type filter"
// @Param priority query int false "Priority level filter"
// @Param requester_id query string false "Requester filter"
// @Param project_id query string false "Project ID (UUID)"
// @Param team_id query string false "Team ID (UUID)"
// @Param crew_id query string false "Crew ID (UUID)"
// @Param start_from query string false "Earliest start date (RFC3339)"
// @Param start_to query string false "Latest start date (RFC3339)"
// @Param created_from query string false "Created on or after (RFC3339)"
// @Param created_to query string false "Created on or before (RFC3339)"
// @Param sort_by query string false "created_at, start_date, priority_level or status"
// @Param sort_order query string false "asc or desc"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.AssignmentListResponse "Page of requests"
// @Failure 400 {object} ErrorResponse "Invalid query parameter"
// @Security BearerAuth
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	params := &service.ListRequestsParams{
		RequesterID: c.Query("requester_id"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
	}

	if v := c.Query("status"); v != "" {
		status := models.AssignmentStatus(v)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
			return
		}
		params.Status = &status
	}
	if v := c.Query("type"); v != "" {
		t := models.AssignmentType(v)
		if !t.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid assignment type"})
			return
		}
		params.Type = &t
	}
	if v := c.Query("priority"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid priority"})
			return
		}
		params.PriorityLevel = &p
	}

	ids := []struct {
		key string
		dst **uuid.UUID
	}{
		{"project_id", &params.ProjectID},
		{"team_id", &params.TeamID},
		{"crew_id", &params.CrewID},
	}
	for _, q := range ids {
		id, ok := optionalUUID(c, q.key)
		if !ok {
			return
		}
		*q.dst = id
	}

	times := []struct {
		key string
		dst **time.Time
	}{
		{"start_from", &params.StartFrom},
		{"start_to", &params.StartTo},
		{"created_from", &params.CreatedFrom},
		{"created_to", &params.CreatedTo},
	}
	for _, q := range times {
		t, ok := optionalTime(c, q.key)
		if !ok {
			return
		}
		*q.dst = t
	}

	params.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	params.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.assignments.ListRequests(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAssignment handles GET /assignments/:id
// @Summary Get assignment request by ID
// @Tags assignments
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} service.AssignmentRequestView "Request"
// @Failure 400 {object} ErrorResponse "Invalid request ID"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	view, err := h.assignments.GetRequest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateAssignment handles PUT /assignments/:id
// @Summary Update a pending assignment request
// @Description Only the requester, or an actor allowed to manage requests, may edit a pending request
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param request body service.UpdateAssignmentRequest true "Fields to change"
// @Success 200 {object} service.AssignmentRequestView "Updated request"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not allowed to modify this request"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request is no longer pending or capacity conflict"
// @Security BearerAuth
// @Router /assignments/{id} [put]
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	actor, _ := auth.GetActorID(c)
	view, err := h.assignments.UpdateRequest(c.Request.Context(), id, &req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetWorkflow handles GET /assignments/:id/workflow
// @Summary Get workflow status
// @Description Current state, state log, approvals and the approver the request waits on
// @Tags assignments
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} service.WorkflowStatus "Workflow status"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /assignments/{id}/workflow [get]
func (h *AssignmentHandler) GetWorkflow(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	status, err := h.assignments.GetWorkflowStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetHistory handles GET /assignments/:id/history
// @Summary Get audit history
// @Tags assignments
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {array} models.AssignmentHistory "Field changes in order"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /assignments/{id}/history [get]
func (h *AssignmentHandler) GetHistory(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	history, err := h.assignments.GetHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if history == nil {
		history = []models.AssignmentHistory{}
	}

	c.JSON(http.StatusOK, history)
}

// CancelAssignment handles POST /assignments/:id/cancel
// @Summary Cancel a request
// @Description Cancels a pending or approved request and releases its capacity
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param request body service.LifecycleRequest false "Reason"
// @Success 200 {object} service.AssignmentRequestView "Cancelled request"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 409 {object} ErrorResponse "Request cannot be cancelled"
// @Security BearerAuth
// @Router /assignments/{id}/cancel [post]
func (h *AssignmentHandler) CancelAssignment(c *gin.Context) {
	h.lifecycle(c, h.assignments.CancelRequest)
}

// ScheduleAssignment handles POST /assignments/:id/schedule
// @Summary Schedule an approved request
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param request body service.LifecycleRequest false "Reason"
// @Success 200 {object} service.AssignmentRequestView "Scheduled request"
// @Failure 409 {object} ErrorResponse "Request cannot be scheduled"
// @Security BearerAuth
// @Router /assignments/{id}/schedule [post]
func (h *AssignmentHandler) ScheduleAssignment(c *gin.Context) {
	h.lifecycle(c, h.assignments.ScheduleRequest)
}

// StartAssignment handles POST /assignments/:id/start
// @Summary Start work on a request
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param request body service.LifecycleRequest false "Reason"
// @Success 200 {object} service.AssignmentRequestView "Started request"
// @Failure 409 {object} ErrorResponse "Request cannot be started"
// @Security BearerAuth
// @Router /assignments/{id}/start [post]
func (h *AssignmentHandler) StartAssignment(c *gin.Context) {
	h.lifecycle(c, h.assignments.StartRequest)
}

// CompleteAssignment handles POST /assignments/:id/complete
// @Summary Complete an in-progress request
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param request body service.LifecycleRequest false "Reason"
// @Success 200 {object} service.AssignmentRequestView "Completed request"
// @Failure 409 {object} ErrorResponse "Request cannot be completed"
// @Security BearerAuth
// @Router /assignments/{id}/complete [post]
func (h *AssignmentHandler) CompleteAssignment(c *gin.Context) {
	h.lifecycle(c, h.assignments.CompleteRequest)
}

type lifecycleFunc func(ctx context.Context, id uuid.UUID, actorID, reason string) (*service.AssignmentRequestView, error)

func (h *AssignmentHandler) lifecycle(c *gin.Context, move lifecycleFunc) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	var req service.LifecycleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	actor, _ := auth.GetActorID(c)
	view, err := move(c.Request.Context(), id, actor, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func pathUUID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request ID"})
		return uuid.Nil, false
	}
	return id, true
}

func optionalUUID(c *gin.Context, key string) (*uuid.UUID, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	id, err := uuid.Parse(v)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + key})
		return nil, false
	}
	return &id, true
}

func optionalTime(c *gin.Context, key string) (*time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: key + " must be RFC3339"})
		return nil, false
	}
	return &t, true
}
