package dtos

import (
	"time"

	"github.com/google/uuid"
)

type VersionStatus string

const (
	VersionStatusDraft     VersionStatus = "draft"
	VersionStatusFinalized VersionStatus = "finalized"
)

type ScanStatus string

const (
	ScanStatusPending  ScanStatus = "pending"
	ScanStatusScanning ScanStatus = "scanning"
	ScanStatusClean    ScanStatus = "clean"
	ScanStatusInfected ScanStatus = "infected"
	ScanStatusError    ScanStatus = "error"
)

type AssetVersionDTO struct {
	ID            uuid.UUID     `json:"id"`
	AssetID       uuid.UUID     `json:"assetId"`
	VersionNumber int           `json:"versionNumber"`
	FileName      string        `json:"fileName"`
	SizeBytes     int64         `json:"sizeBytes"`
	Checksum      string        `json:"checksum"`
	VersionStatus VersionStatus `json:"versionStatus"`
	ScanStatus    ScanStatus    `json:"scanStatus"`
	UploadedBy    string        `json:"uploadedBy"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type MarkInfectedRequest struct {
	VirusName string `json:"virusName" validate:"required"`
}

type MarkErrorRequest struct {
	ErrorMessage string `json:"errorMessage" validate:"required"`
}
