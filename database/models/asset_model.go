package models

import (
	"github.com/google/uuid"
	databasetypes "github.com/l3montree-dev/brandguard/database/types"
	"github.com/l3montree-dev/brandguard/dtos"
	"gorm.io/gorm"
)

type Asset struct {
	Model
	Name        string           `json:"name" gorm:"type:text;not null;"`
	Slug        string           `json:"slug" gorm:"type:text;uniqueIndex:idx_asset_project_slug,where:deleted_at IS NULL;not null;"`
	ProjectID   uuid.UUID        `json:"projectId" gorm:"uniqueIndex:idx_asset_project_slug;not null;type:uuid;"`
	TaskID      *uuid.UUID       `json:"taskId" gorm:"type:uuid;"`
	Description string           `json:"description" gorm:"type:text"`
	Status      dtos.AssetStatus `json:"status" gorm:"type:text;not null;default:'notSubmitted';"`

	Metadata databasetypes.JSONB `json:"metadata" gorm:"type:jsonb;"`

	AssetVersions []AssetVersion         `json:"assetVersions" gorm:"foreignKey:AssetID;references:ID;constraint:OnDelete:CASCADE;"`
	Transitions   []AssetStateTransition `json:"transitions" gorm:"foreignKey:AssetID;references:ID;constraint:OnDelete:CASCADE;"`

	CreatedBy string         `json:"createdBy" gorm:"type:text;"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (m Asset) TableName() string {
	return "assets"
}

func (m *Asset) GetSlug() string {
	return m.Slug
}

func (m *Asset) SetSlug(slug string) {
	m.Slug = slug
}
