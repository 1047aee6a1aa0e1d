// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package services

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/monitoring"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/l3montree-dev/brandguard/statemachine"
)

// workflowService owns every state transition of assets and asset
// versions. Each call runs a single transaction: load the entity fresh
// under a row lock, re-evaluate the guard, mutate and append exactly one
// transition row. A failing guard leaves the database untouched.
type workflowService struct {
	assetRepository                  shared.AssetRepository
	assetVersionRepository           shared.AssetVersionRepository
	assetTransitionRepository        shared.AssetTransitionRepository
	assetVersionTransitionRepository shared.AssetVersionTransitionRepository
	notifier                         shared.Notifier
}

func NewWorkflowService(
	assetRepository shared.AssetRepository,
	assetVersionRepository shared.AssetVersionRepository,
	assetTransitionRepository shared.AssetTransitionRepository,
	assetVersionTransitionRepository shared.AssetVersionTransitionRepository,
	notifier shared.Notifier,
) *workflowService {
	return &workflowService{
		assetRepository:                  assetRepository,
		assetVersionRepository:           assetVersionRepository,
		assetTransitionRepository:        assetTransitionRepository,
		assetVersionTransitionRepository: assetVersionTransitionRepository,
		notifier:                         notifier,
	}
}

type assetGuard func(tx shared.DB, asset models.Asset) error
type assetTransitionBuilder func(asset models.Asset, from dtos.AssetStatus, triggeredBy *string) models.AssetStateTransition

func (service *workflowService) transitionAsset(assetID uuid.UUID, method dtos.TransitionMethod, triggeredBy *string, guard assetGuard, build assetTransitionBuilder) (models.Asset, error) {
	var asset models.Asset
	var transition models.AssetStateTransition

	err := service.assetRepository.Transaction(func(tx shared.DB) error {
		var err error
		asset, err = service.assetRepository.ReadForUpdate(tx, assetID)
		if err != nil {
			return err
		}

		next, err := statemachine.NextAssetStatus(asset.Status, method)
		if err != nil {
			return err
		}

		if guard != nil {
			if err := guard(tx, asset); err != nil {
				return err
			}
		}

		from := asset.Status
		asset.Status = next
		if err := service.assetRepository.Save(tx, &asset); err != nil {
			return err
		}

		if build != nil {
			transition = build(asset, from, triggeredBy)
		} else {
			transition = models.NewAssetTransition(asset.ID, from, next, method, triggeredBy)
		}
		return service.assetTransitionRepository.Create(tx, &transition)
	})

	if err != nil {
		monitoring.RejectedTransitionsTotal.WithLabelValues(string(method)).Inc()
		return models.Asset{}, err
	}

	monitoring.AssetTransitionsTotal.WithLabelValues(string(method)).Inc()
	service.notify(asset, transition)
	return asset, nil
}

// notify runs after the commit. A failing notifier never affects the
// transition result.
func (service *workflowService) notify(asset models.Asset, transition models.AssetStateTransition) {
	if service.notifier == nil {
		return
	}
	if err := service.notifier.NotifyAssetTransition(asset, transition); err != nil {
		slog.Warn("could not notify about asset transition", "err", err, "assetID", asset.ID, "method", transition.TransitionMethod)
	}
}

func (service *workflowService) SubmitAsset(assetID uuid.UUID, triggeredBy *string) (models.Asset, error) {
	return service.transitionAsset(assetID, dtos.TransitionSubmit, triggeredBy, func(tx shared.DB, asset models.Asset) error {
		latest, err := service.assetVersionRepository.LatestVersion(tx, asset.ID)
		if err != nil {
			return err
		}
		hasDraft, err := service.assetVersionRepository.HasDraftVersion(tx, asset.ID)
		if err != nil {
			return err
		}
		return statemachine.GuardSubmit(asset, latest, hasDraft)
	}, nil)
}

func (service *workflowService) StartReview(assetID uuid.UUID, triggeredBy *string) (models.Asset, error) {
	return service.transitionAsset(assetID, dtos.TransitionStartReview, triggeredBy, nil, nil)
}

func (service *workflowService) ApproveAsset(assetID uuid.UUID, triggeredBy *string) (models.Asset, error) {
	return service.transitionAsset(assetID, dtos.TransitionApprove, triggeredBy, nil, nil)
}

func (service *workflowService) RejectAsset(assetID uuid.UUID, triggeredBy *string, reason string) (models.Asset, error) {
	return service.transitionAsset(assetID, dtos.TransitionReject, triggeredBy, nil,
		func(asset models.Asset, from dtos.AssetStatus, triggeredBy *string) models.AssetStateTransition {
			return models.NewRejectTransition(asset.ID, from, triggeredBy, reason)
		})
}

func (service *workflowService) AcknowledgeRejection(assetID uuid.UUID, triggeredBy *string, reason string) (models.Asset, error) {
	return service.transitionAsset(assetID, dtos.TransitionAcknowledgeRejection, triggeredBy, nil,
		func(asset models.Asset, from dtos.AssetStatus, triggeredBy *string) models.AssetStateTransition {
			transition := models.NewAssetTransition(asset.ID, from, asset.Status, dtos.TransitionAcknowledgeRejection, triggeredBy)
			if reason != "" {
				transition.SetArbitraryJSONData(map[string]any{"reason": reason})
			}
			return transition
		})
}

func (service *workflowService) ArchiveAsset(assetID uuid.UUID, triggeredBy *string) (models.Asset, error) {
	return service.transitionAsset(assetID, dtos.TransitionArchive, triggeredBy, nil, nil)
}

type versionTransitionBuilder func(version models.AssetVersion, from string, triggeredBy *string) models.AssetVersionStateTransition

func (service *workflowService) transitionVersion(assetVersionID uuid.UUID, method dtos.TransitionMethod, triggeredBy *string, apply func(version *models.AssetVersion) (from string, err error), build versionTransitionBuilder) (models.AssetVersion, error) {
	var version models.AssetVersion

	err := service.assetVersionRepository.Transaction(func(tx shared.DB) error {
		var err error
		version, err = service.assetVersionRepository.ReadForUpdate(tx, assetVersionID)
		if err != nil {
			return err
		}

		from, err := apply(&version)
		if err != nil {
			return err
		}

		if err := service.assetVersionRepository.Save(tx, &version); err != nil {
			return err
		}

		transition := build(version, from, triggeredBy)
		return service.assetVersionTransitionRepository.Create(tx, &transition)
	})

	if err != nil {
		monitoring.RejectedTransitionsTotal.WithLabelValues(string(method)).Inc()
		return models.AssetVersion{}, err
	}

	monitoring.AssetVersionTransitionsTotal.WithLabelValues(string(method)).Inc()
	return version, nil
}

func (service *workflowService) FinalizeVersion(assetVersionID uuid.UUID, triggeredBy *string) (models.AssetVersion, error) {
	return service.transitionVersion(assetVersionID, dtos.TransitionFinalize, triggeredBy,
		func(version *models.AssetVersion) (string, error) {
			if err := statemachine.GuardFinalize(*version); err != nil {
				return "", err
			}
			version.VersionStatus = dtos.VersionStatusFinalized
			return string(dtos.VersionStatusDraft), nil
		},
		func(version models.AssetVersion, from string, triggeredBy *string) models.AssetVersionStateTransition {
			return models.NewFinalizeTransition(version.ID, triggeredBy)
		})
}

func (service *workflowService) scanTransition(assetVersionID uuid.UUID, method dtos.TransitionMethod, triggeredBy *string, build versionTransitionBuilder) (models.AssetVersion, error) {
	return service.transitionVersion(assetVersionID, method, triggeredBy,
		func(version *models.AssetVersion) (string, error) {
			next, err := statemachine.NextScanStatus(version.ScanStatus, method)
			if err != nil {
				return "", err
			}
			from := string(version.ScanStatus)
			version.ScanStatus = next
			return from, nil
		}, build)
}

func (service *workflowService) StartScan(assetVersionID uuid.UUID, triggeredBy *string) (models.AssetVersion, error) {
	return service.scanTransition(assetVersionID, dtos.TransitionStartScan, triggeredBy,
		func(version models.AssetVersion, from string, triggeredBy *string) models.AssetVersionStateTransition {
			return models.NewVersionTransition(version.ID, from, string(version.ScanStatus), dtos.TransitionStartScan, triggeredBy)
		})
}

func (service *workflowService) MarkClean(assetVersionID uuid.UUID, triggeredBy *string) (models.AssetVersion, error) {
	return service.scanTransition(assetVersionID, dtos.TransitionMarkClean, triggeredBy,
		func(version models.AssetVersion, from string, triggeredBy *string) models.AssetVersionStateTransition {
			return models.NewVersionTransition(version.ID, from, string(version.ScanStatus), dtos.TransitionMarkClean, triggeredBy)
		})
}

func (service *workflowService) MarkInfected(assetVersionID uuid.UUID, triggeredBy *string, virusName string) (models.AssetVersion, error) {
	return service.scanTransition(assetVersionID, dtos.TransitionMarkInfected, triggeredBy,
		func(version models.AssetVersion, from string, triggeredBy *string) models.AssetVersionStateTransition {
			return models.NewMarkInfectedTransition(version.ID, dtos.ScanStatus(from), triggeredBy, virusName)
		})
}

func (service *workflowService) MarkError(assetVersionID uuid.UUID, triggeredBy *string, errorMessage string) (models.AssetVersion, error) {
	return service.scanTransition(assetVersionID, dtos.TransitionMarkError, triggeredBy,
		func(version models.AssetVersion, from string, triggeredBy *string) models.AssetVersionStateTransition {
			return models.NewMarkErrorTransition(version.ID, dtos.ScanStatus(from), triggeredBy, errorMessage)
		})
}

func (service *workflowService) GetAvailableTransitions(assetID uuid.UUID) ([]dtos.TransitionMethod, error) {
	asset, err := service.assetRepository.Read(assetID)
	if err != nil {
		return nil, err
	}
	latest, err := service.assetVersionRepository.LatestVersion(nil, assetID)
	if err != nil {
		return nil, err
	}
	hasDraft, err := service.assetVersionRepository.HasDraftVersion(nil, assetID)
	if err != nil {
		return nil, err
	}
	return statemachine.AvailableAssetTransitions(asset, latest, hasDraft), nil
}
