package service

import (
	"context"
	"fmt"

	"assignment-workflow-backend/internal/database/models"
	"assignment-workflow-backend/internal/directory"
	apperrors "assignment-workflow-backend/internal/errors"
	"assignment-workflow-backend/internal/workflow"
)

// RoutedApprover is the approver chosen for one level of a chain
type RoutedApprover struct {
	directory.Approver
	Level int
}

// ApprovalRouter maps (type, approvals so far) to the next approver
type ApprovalRouter struct {
	machine    *workflow.Machine
	identities directory.IdentityDirectory
}

// NewApprovalRouter creates a router resolving roles through identities
func NewApprovalRouter(machine *workflow.Machine, identities directory.IdentityDirectory) *ApprovalRouter {
	return &ApprovalRouter{machine: machine, identities: identities}
}

// NextApprover resolves level existingApprovals+1. A level the chain does
// not define, or a role nobody holds, is a RoutingError.
func (r *ApprovalRouter) NextApprover(ctx context.Context, req *models.AssignmentRequest, existingApprovals int) (*RoutedApprover, error) {
	level := existingApprovals + 1

	role, ok := r.machine.RoleForLevel(req.AssignmentType, level)
	if !ok {
		return nil, &apperrors.RoutingError{Level: level}
	}

	approver, err := r.identities.ResolveApprover(ctx, role, req.Region)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, &apperrors.RoutingError{Role: role, Level: level, Region: req.Region}
		}
		return nil, fmt.Errorf("failed to resolve %s approver: %w", role, err)
	}

	approver.Role = role
	return &RoutedApprover{Approver: *approver, Level: level}, nil
}
