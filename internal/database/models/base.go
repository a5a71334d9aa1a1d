package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// DirectoryModel is the shared shape of the read-only lookup tables
type DirectoryModel struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"` // readable 'id'
	Title       string          `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`            // AKA display name
	Description string          `json:"description" gorm:"size:500" validate:"max=500"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`
}

// DisplayName returns the title, falling back to the name
func (d DirectoryModel) DisplayName() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}
