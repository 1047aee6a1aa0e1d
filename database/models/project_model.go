package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	Model
	Name           string         `json:"name" gorm:"type:text;not null;"`
	Slug           string         `json:"slug" gorm:"type:text;uniqueIndex:idx_project_org_slug,where:deleted_at IS NULL;not null;"`
	OrganizationID uuid.UUID      `json:"organizationId" gorm:"uniqueIndex:idx_project_org_slug;not null;type:uuid;"`
	Description    string         `json:"description" gorm:"type:text"`
	Assets         []Asset        `json:"assets" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
	Tasks          []Task         `json:"tasks" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

func (m Project) TableName() string {
	return "projects"
}

func (m *Project) GetSlug() string {
	return m.Slug
}

func (m *Project) SetSlug(slug string) {
	m.Slug = slug
}
