package directory

import (
	"context"
	"errors"
	"fmt"

	"assignment-workflow-backend/internal/database/models"
	apperrors "assignment-workflow-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormResourceDirectory reads crews, teams and projects from the database
type GormResourceDirectory struct {
	db *gorm.DB
}

// NewGormResourceDirectory creates a database backed resource directory
func NewGormResourceDirectory(db *gorm.DB) *GormResourceDirectory {
	return &GormResourceDirectory{db: db}
}

func modelFor(kind ResourceKind) (interface{}, error) {
	switch kind {
	case KindCrew:
		return &models.TradeCrew{}, nil
	case KindTeam:
		return &models.TradeTeam{}, nil
	case KindProject:
		return &models.Project{}, nil
	default:
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
}

func notFoundFor(kind ResourceKind) error {
	switch kind {
	case KindCrew:
		return apperrors.ErrTradeCrewNotFound
	case KindTeam:
		return apperrors.ErrTradeTeamNotFound
	default:
		return apperrors.ErrProjectNotFound
	}
}

// Exists reports whether a row of kind with id is present
func (d *GormResourceDirectory) Exists(ctx context.Context, kind ResourceKind, id uuid.UUID) (bool, error) {
	model, err := modelFor(kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := d.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up %s: %w", kind, err)
	}
	return count > 0, nil
}

// Name returns the display name of a crew, team or project
func (d *GormResourceDirectory) Name(ctx context.Context, kind ResourceKind, id uuid.UUID) (string, error) {
	model, err := modelFor(kind)
	if err != nil {
		return "", err
	}

	var row models.DirectoryModel
	err = d.db.WithContext(ctx).Model(model).Select("id", "name", "title").Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFoundFor(kind)
		}
		return "", fmt.Errorf("failed to look up %s name: %w", kind, err)
	}
	return row.DisplayName(), nil
}

// ActiveCrewIDs lists active crews ordered by name
func (d *GormResourceDirectory) ActiveCrewIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := d.db.WithContext(ctx).Model(&models.TradeCrew{}).
		Where("active = ?", true).
		Order("name ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list crews: %w", err)
	}
	return ids, nil
}
