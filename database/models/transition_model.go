package models

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/dtos"
)

// AssetStateTransition is a single row of the append-only approval audit
// stream. Rows are only ever created, never updated or deleted.
type AssetStateTransition struct {
	Model
	AssetID           uuid.UUID             `json:"assetId" gorm:"not null;type:uuid;index;"`
	FromState         dtos.AssetStatus      `json:"fromState" gorm:"type:text;not null;"`
	ToState           dtos.AssetStatus      `json:"toState" gorm:"type:text;not null;"`
	TransitionMethod  dtos.TransitionMethod `json:"transitionMethod" gorm:"type:text;not null;"`
	TriggeredBy       *string               `json:"triggeredBy" gorm:"type:text;"`
	ArbitraryJSONData string                `json:"arbitraryJSONData" gorm:"type:text;"`
	arbitraryJSONData map[string]any
}

func (transition AssetStateTransition) TableName() string {
	return "asset_state_transitions"
}

func (transition *AssetStateTransition) GetArbitraryJSONData() map[string]any {
	// parse the additional data
	if transition.ArbitraryJSONData == "" {
		return make(map[string]any)
	}
	if transition.arbitraryJSONData == nil {
		transition.arbitraryJSONData = make(map[string]any)
		err := json.Unmarshal([]byte(transition.ArbitraryJSONData), &transition.arbitraryJSONData)
		if err != nil {
			slog.Error("could not parse additional data", "err", err, "assetStateTransitionID", transition.ID)
		}
	}
	return transition.arbitraryJSONData
}

func (transition *AssetStateTransition) SetArbitraryJSONData(data map[string]any) {
	transition.arbitraryJSONData = data
	dataBytes, err := json.Marshal(transition.arbitraryJSONData)
	if err != nil {
		slog.Error("could not marshal additional data", "err", err, "assetStateTransitionID", transition.ID)
	}
	transition.ArbitraryJSONData = string(dataBytes)
}

// AssetVersionStateTransition records lifecycle and scan transitions of a
// single asset version. Append-only like AssetStateTransition.
type AssetVersionStateTransition struct {
	Model
	AssetVersionID    uuid.UUID             `json:"assetVersionId" gorm:"not null;type:uuid;index;"`
	FromState         string                `json:"fromState" gorm:"type:text;not null;"`
	ToState           string                `json:"toState" gorm:"type:text;not null;"`
	TransitionMethod  dtos.TransitionMethod `json:"transitionMethod" gorm:"type:text;not null;"`
	TriggeredBy       *string               `json:"triggeredBy" gorm:"type:text;"`
	ArbitraryJSONData string                `json:"arbitraryJSONData" gorm:"type:text;"`
	arbitraryJSONData map[string]any
}

func (transition AssetVersionStateTransition) TableName() string {
	return "asset_version_state_transitions"
}

func (transition *AssetVersionStateTransition) GetArbitraryJSONData() map[string]any {
	if transition.ArbitraryJSONData == "" {
		return make(map[string]any)
	}
	if transition.arbitraryJSONData == nil {
		transition.arbitraryJSONData = make(map[string]any)
		err := json.Unmarshal([]byte(transition.ArbitraryJSONData), &transition.arbitraryJSONData)
		if err != nil {
			slog.Error("could not parse additional data", "err", err, "assetVersionStateTransitionID", transition.ID)
		}
	}
	return transition.arbitraryJSONData
}

func (transition *AssetVersionStateTransition) SetArbitraryJSONData(data map[string]any) {
	transition.arbitraryJSONData = data
	dataBytes, err := json.Marshal(transition.arbitraryJSONData)
	if err != nil {
		slog.Error("could not marshal additional data", "err", err, "assetVersionStateTransitionID", transition.ID)
	}
	transition.ArbitraryJSONData = string(dataBytes)
}

func NewAssetTransition(assetID uuid.UUID, from, to dtos.AssetStatus, method dtos.TransitionMethod, triggeredBy *string) AssetStateTransition {
	return AssetStateTransition{
		AssetID:          assetID,
		FromState:        from,
		ToState:          to,
		TransitionMethod: method,
		TriggeredBy:      triggeredBy,
	}
}

func NewRejectTransition(assetID uuid.UUID, from dtos.AssetStatus, triggeredBy *string, reason string) AssetStateTransition {
	transition := NewAssetTransition(assetID, from, dtos.AssetStatusRevisionRequired, dtos.TransitionReject, triggeredBy)
	data := map[string]any{"action": "rejected"}
	if reason != "" {
		data["reason"] = reason
	}
	transition.SetArbitraryJSONData(data)
	return transition
}

func NewVersionTransition(assetVersionID uuid.UUID, from, to string, method dtos.TransitionMethod, triggeredBy *string) AssetVersionStateTransition {
	return AssetVersionStateTransition{
		AssetVersionID:   assetVersionID,
		FromState:        from,
		ToState:          to,
		TransitionMethod: method,
		TriggeredBy:      triggeredBy,
	}
}

func NewFinalizeTransition(assetVersionID uuid.UUID, triggeredBy *string) AssetVersionStateTransition {
	transition := NewVersionTransition(assetVersionID, string(dtos.VersionStatusDraft), string(dtos.VersionStatusFinalized), dtos.TransitionFinalize, triggeredBy)
	transition.SetArbitraryJSONData(map[string]any{"action": "version_finalized"})
	return transition
}

func NewMarkInfectedTransition(assetVersionID uuid.UUID, from dtos.ScanStatus, triggeredBy *string, virusName string) AssetVersionStateTransition {
	transition := NewVersionTransition(assetVersionID, string(from), string(dtos.ScanStatusInfected), dtos.TransitionMarkInfected, triggeredBy)
	transition.SetArbitraryJSONData(map[string]any{"virus": virusName})
	return transition
}

func NewMarkErrorTransition(assetVersionID uuid.UUID, from dtos.ScanStatus, triggeredBy *string, errorMessage string) AssetVersionStateTransition {
	transition := NewVersionTransition(assetVersionID, string(from), string(dtos.ScanStatusError), dtos.TransitionMarkError, triggeredBy)
	transition.SetArbitraryJSONData(map[string]any{"error": errorMessage})
	return transition
}
