// Package directory holds the read-only lookups the engine depends on:
// who may approve what, and which crews, teams and projects exist.
package directory

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=directory.go -destination=../mocks/directory_mocks.go -package=mocks

// Role names understood by the directory
const (
	RoleSupervisor  = "supervisor"
	RoleCoordinator = "coordinator"
	RoleManager     = "manager"
	RoleAdmin       = "admin"
)

// Actions checked through IsAuthorized
const (
	ActionCancelRequest = "request:cancel"
	ActionManageRequest = "request:manage"
)

// ActionApprove is the action an actor needs to decide approvals for role
func ActionApprove(role string) string {
	return "approve:" + role
}

// Approver is a concrete identity able to decide one approval level
type Approver struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email,omitempty" yaml:"email"`
	Role   string `json:"role" yaml:"-"`
	Region string `json:"region,omitempty" yaml:"-"`
}

// IdentityDirectory maps logical roles to concrete approvers
type IdentityDirectory interface {
	// ResolveApprover returns apperrors.ErrApproverNotFound when no identity holds role in region
	ResolveApprover(ctx context.Context, role, region string) (*Approver, error)
	IsAuthorized(ctx context.Context, actorID, action string) (bool, error)
}

// ResourceKind names a directory table
type ResourceKind string

const (
	KindCrew    ResourceKind = "crew"
	KindTeam    ResourceKind = "team"
	KindProject ResourceKind = "project"
)

// ResourceDirectory answers existence and display lookups for crews, teams and projects
type ResourceDirectory interface {
	Exists(ctx context.Context, kind ResourceKind, id uuid.UUID) (bool, error)
	Name(ctx context.Context, kind ResourceKind, id uuid.UUID) (string, error)
	ActiveCrewIDs(ctx context.Context) ([]uuid.UUID, error)
}

// rolesGrant reports whether any of roles permits action
func rolesGrant(roles []string, action string) bool {
	for _, role := range roles {
		role = strings.ToLower(role)
		switch {
		case role == RoleAdmin:
			return true
		case action == ActionApprove(role):
			return true
		case role == RoleManager && (action == ActionManageRequest || action == ActionCancelRequest):
			return true
		case role == RoleCoordinator && action == ActionCancelRequest:
			return true
		}
	}
	return false
}
