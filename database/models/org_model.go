package models

import (
	"gorm.io/gorm"
)

type Org struct {
	Model
	Name        string         `json:"name" gorm:"type:text;not null;"`
	Slug        string         `json:"slug" gorm:"type:text;uniqueIndex:idx_org_slug,where:deleted_at IS NULL;not null;"`
	Description string         `json:"description" gorm:"type:text"`
	Projects    []Project      `json:"projects" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (m Org) TableName() string {
	return "organizations"
}

func (m *Org) GetSlug() string {
	return m.Slug
}

func (m *Org) SetSlug(slug string) {
	m.Slug = slug
}
