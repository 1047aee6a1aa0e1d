package models

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/dtos"
	"gorm.io/gorm"
)

type AssetVersion struct {
	Model
	AssetID       uuid.UUID `json:"assetId" gorm:"not null;type:uuid;"`
	VersionNumber int       `json:"versionNumber" gorm:"not null;"`

	FileName   string `json:"fileName" gorm:"type:text;not null;"`
	SizeBytes  int64  `json:"sizeBytes" gorm:"not null;default:0;"`
	Checksum   string `json:"checksum" gorm:"type:text;not null;"`
	StorageKey string `json:"-" gorm:"type:text;not null;"`

	VersionStatus dtos.VersionStatus `json:"versionStatus" gorm:"type:text;not null;default:'draft';"`
	ScanStatus    dtos.ScanStatus    `json:"scanStatus" gorm:"type:text;not null;default:'pending';"`

	Transitions []AssetVersionStateTransition `json:"transitions" gorm:"foreignKey:AssetVersionID;references:ID;constraint:OnDelete:CASCADE;"`

	UploadedBy string         `json:"uploadedBy" gorm:"type:text;"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (m AssetVersion) TableName() string {
	return "asset_versions"
}

// IsDraft reports whether the version can still be mutated.
func (m AssetVersion) IsDraft() bool {
	return m.VersionStatus == dtos.VersionStatusDraft
}

func (m AssetVersion) IsClean() bool {
	return m.ScanStatus == dtos.ScanStatusClean
}
