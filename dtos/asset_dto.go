package dtos

import (
	"time"

	"github.com/google/uuid"
)

type AssetStatus string

const (
	AssetStatusNotSubmitted     AssetStatus = "notSubmitted"
	AssetStatusPendingReview    AssetStatus = "pendingReview"
	AssetStatusUnderReview      AssetStatus = "underReview"
	AssetStatusApproved         AssetStatus = "approved"
	AssetStatusRevisionRequired AssetStatus = "revisionRequired"
	AssetStatusArchived         AssetStatus = "archived"
)

type AssetDTO struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	ProjectID   uuid.UUID      `json:"projectId"`
	TaskID      *uuid.UUID     `json:"taskId,omitempty"`
	Status      AssetStatus    `json:"status"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type CreateAssetRequest struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	TaskID      *uuid.UUID     `json:"taskId"`
	Metadata    map[string]any `json:"metadata"`
}

type PatchAssetRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	TaskID      *uuid.UUID      `json:"taskId"`
	Metadata    *map[string]any `json:"metadata"`
}

// RejectAssetRequest carries the optional reviewer reason. The reason is
// copied into the transition metadata only when it is non-empty.
type RejectAssetRequest struct {
	Reason string `json:"reason"`
}

type AcknowledgeRejectionRequest struct {
	Reason string `json:"reason"`
}
