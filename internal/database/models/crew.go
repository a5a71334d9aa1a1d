package models

import (
	"github.com/google/uuid"
)

// TradeCrew is the unit whose capacity is allocated; read-only lookup data
type TradeCrew struct {
	DirectoryModel
	TeamID *uuid.UUID `json:"team_id" gorm:"type:uuid;index"`
	Region string     `json:"region" gorm:"size:50;index"`
	Size   int        `json:"size" gorm:"default:1"`
	Active bool       `json:"active" gorm:"default:true"`
}

// TableName returns the table name for TradeCrew
func (TradeCrew) TableName() string {
	return "trade_crews"
}
