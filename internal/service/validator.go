package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"assignment-workflow-backend/internal/database/models"
	"assignment-workflow-backend/internal/directory"
	apperrors "assignment-workflow-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator checks drafts against field constraints and assignment policy
type Validator struct {
	validate  *validator.Validate
	resources directory.ResourceDirectory
	now       func() time.Time
}

// NewValidator creates a validator; field errors are reported by their JSON names
func NewValidator(validate *validator.Validate, resources directory.ResourceDirectory) *Validator {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: validate, resources: resources, now: time.Now}
}

// Validate returns every rule the draft breaks. The error result is reserved
// for failures of the directory lookup itself.
func (v *Validator) Validate(ctx context.Context, draft *CreateAssignmentRequest) (apperrors.ValidationErrors, error) {
	return v.validateDraft(ctx, draft, true)
}

func (v *Validator) validateDraft(ctx context.Context, draft *CreateAssignmentRequest, checkStart bool) (apperrors.ValidationErrors, error) {
	var errs apperrors.ValidationErrors

	if err := v.validate.Struct(draft); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("failed to validate request: %w", err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, &apperrors.ValidationError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
	}

	if draft.AssignmentType == models.AssignmentTypeEmergency && draft.PriorityLevel > 2 {
		errs = append(errs, &apperrors.ValidationError{
			Field:   "priority_level",
			Message: "emergency requests must have priority 1 or 2",
		})
	}

	if draft.EndDate != nil && !draft.EndDate.After(draft.StartDate) {
		errs = append(errs, &apperrors.ValidationError{Field: "end_date", Message: "must be after start_date"})
	}

	if checkStart && !draft.StartDate.IsZero() &&
		draft.AssignmentType != models.AssignmentTypeEmergency &&
		draft.StartDate.Before(v.now()) {
		errs = append(errs, &apperrors.ValidationError{
			Field:   "start_date",
			Message: "cannot be in the past for non-emergency requests",
		})
	}

	refs := []struct {
		field string
		kind  directory.ResourceKind
		id    *uuid.UUID
	}{
		{"crew_id", directory.KindCrew, draft.CrewID},
		{"team_id", directory.KindTeam, draft.TeamID},
		{"project_id", directory.KindProject, draft.ProjectID},
	}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		ok, err := v.resources.Exists(ctx, ref.kind, *ref.id)
		if err != nil {
			return nil, fmt.Errorf("failed to verify %s: %w", ref.kind, err)
		}
		if !ok {
			errs = append(errs, &apperrors.ValidationError{
				Field:   ref.field,
				Message: fmt.Sprintf("%s %s does not exist", ref.kind, ref.id),
			})
		}
	}

	return errs, nil
}

// ValidateStruct runs only the tag constraints, for small payloads like decisions
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to validate request: %w", err)
		}
		errs := make(apperrors.ValidationErrors, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			errs = append(errs, &apperrors.ValidationError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return errs
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}

// draftFrom rebuilds the editable fields of a stored request as a draft
func draftFrom(req *models.AssignmentRequest, requirements map[string]interface{}) *CreateAssignmentRequest {
	return &CreateAssignmentRequest{
		AssignmentType:      req.AssignmentType,
		PriorityLevel:       req.PriorityLevel,
		RequestedRole:       req.RequestedRole,
		ProjectID:           req.ProjectID,
		TeamID:              req.TeamID,
		CrewID:              req.CrewID,
		Region:              req.Region,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Description:         req.Description,
		Requirements:        requirements,
		RequiredCapacityPct: req.RequiredCapacityPct,
		Comments:            req.Comments,
	}
}

// applyPatch overlays the non-nil fields of patch onto draft
func applyPatch(draft *CreateAssignmentRequest, patch *UpdateAssignmentRequest) {
	if patch.PriorityLevel != nil {
		draft.PriorityLevel = *patch.PriorityLevel
	}
	if patch.RequestedRole != nil {
		draft.RequestedRole = *patch.RequestedRole
	}
	if patch.ProjectID != nil {
		draft.ProjectID = patch.ProjectID
	}
	if patch.TeamID != nil {
		draft.TeamID = patch.TeamID
	}
	if patch.CrewID != nil {
		draft.CrewID = patch.CrewID
	}
	if patch.Region != nil {
		draft.Region = *patch.Region
	}
	if patch.StartDate != nil {
		draft.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		draft.EndDate = patch.EndDate
	}
	if patch.Description != nil {
		draft.Description = *patch.Description
	}
	if patch.Requirements != nil {
		draft.Requirements = patch.Requirements
	}
	if patch.RequiredCapacityPct != nil {
		draft.RequiredCapacityPct = patch.RequiredCapacityPct
	}
	if patch.Comments != nil {
		draft.Comments = *patch.Comments
	}
}
