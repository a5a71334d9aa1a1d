package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors collects every rule violation found in one draft
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual violations to errors.As
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, e := range v {
		errs = append(errs, e)
	}
	return errs
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// CapacityConflictError is returned when a crew cannot admit another non-emergency allocation
type CapacityConflictError struct {
	CrewID         string
	AvailablePct   int
	UtilizationPct int
}

func (e *CapacityConflictError) Error() string {
	return fmt.Sprintf("insufficient capacity for crew %s: %d%% utilized, %d%% available",
		e.CrewID, e.UtilizationPct, e.AvailablePct)
}

// StateError is returned when an operation is not valid for the current status
type StateError struct {
	Operation string
	Status    string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s: request is %s", e.Operation, e.Status)
}

// RoutingError is returned when no approver can be resolved for a level
type RoutingError struct {
	Role   string
	Level  int
	Region string
}

func (e *RoutingError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("no approval level %d defined for this assignment type", e.Level)
	}
	if e.Region != "" {
		return fmt.Sprintf("no %s approver available for level %d in region %s", e.Role, e.Level, e.Region)
	}
	return fmt.Sprintf("no %s approver available for level %d", e.Role, e.Level)
}

// StaleStateError is returned when a concurrent writer changed the entity first
type StaleStateError struct {
	Entity string
	ID     string
}

func (e *StaleStateError) Error() string {
	return fmt.Sprintf("%s %s was modified concurrently", e.Entity, e.ID)
}

// Entity Not Found Errors
var (
	ErrAssignmentRequestNotFound = &NotFoundError{Entity: "assignment request"}
	ErrApprovalRecordNotFound    = &NotFoundError{Entity: "approval record"}
	ErrWorkflowStateNotFound     = &NotFoundError{Entity: "workflow state"}
	ErrTradeCrewNotFound         = &NotFoundError{Entity: "trade crew"}
	ErrTradeTeamNotFound         = &NotFoundError{Entity: "trade team"}
	ErrProjectNotFound           = &NotFoundError{Entity: "project"}
	ErrApproverNotFound          = &NotFoundError{Entity: "approver"}
)

// Business Logic Errors
var (
	ErrInvalidDecision         = errors.New("decision must be approved or rejected")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrBulkLimitExceeded       = errors.New("bulk create accepts at most 50 requests")
	ErrLockNotAcquired         = errors.New("could not acquire lock")
)

// Authentication Errors
var (
	ErrActorMissing     = &AuthenticationError{Message: "actor identity not found in context"}
	ErrNotAssignedActor = &AuthorizationError{Message: "actor is not the assigned approver"}
	ErrNotRequester     = &AuthorizationError{Message: "only the requester may modify this request"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsCapacityConflict checks if an error is a CapacityConflictError
func IsCapacityConflict(err error) bool {
	var capErr *CapacityConflictError
	return errors.As(err, &capErr)
}

// IsState checks if an error is a StateError
func IsState(err error) bool {
	var stateErr *StateError
	return errors.As(err, &stateErr)
}

// IsRouting checks if an error is a RoutingError
func IsRouting(err error) bool {
	var routingErr *RoutingError
	return errors.As(err, &routingErr)
}

// IsStaleState checks if an error is a StaleStateError
func IsStaleState(err error) bool {
	var staleErr *StaleStateError
	return errors.As(err, &staleErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewStateError creates a new StateError
func NewStateError(operation, status string) error {
	return &StateError{Operation: operation, Status: status}
}

// NewStaleStateError creates a new StaleStateError
func NewStaleStateError(entity, id string) error {
	return &StaleStateError{Entity: entity, ID: id}
}
