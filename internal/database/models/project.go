package models

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusInactive ProjectStatus = "inactive"
	ProjectStatusArchived ProjectStatus = "archived"
)

// Project is a work site or program requests can be charged to; read-only lookup data
type Project struct {
	DirectoryModel
	Status ProjectStatus `json:"status" gorm:"type:varchar(50);default:'active'"`
	Region string        `json:"region" gorm:"size:50"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
