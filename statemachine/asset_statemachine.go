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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package statemachine

import (
	"slices"

	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/dtos"
)

type assetTransition struct {
	from []dtos.AssetStatus
	to   dtos.AssetStatus
}

// assetTransitions is the single source of truth for the approval
// workflow. Guards beyond the source state check live in the Guard*
// functions below.
var assetTransitions = map[dtos.TransitionMethod]assetTransition{
	dtos.TransitionSubmit: {
		// resubmitting from revisionRequired skips the acknowledge step,
		// the author hands the same finalized version back to review
		from: []dtos.AssetStatus{dtos.AssetStatusNotSubmitted, dtos.AssetStatusRevisionRequired},
		to:   dtos.AssetStatusPendingReview,
	},
	dtos.TransitionStartReview: {
		from: []dtos.AssetStatus{dtos.AssetStatusPendingReview},
		to:   dtos.AssetStatusUnderReview,
	},
	dtos.TransitionApprove: {
		from: []dtos.AssetStatus{dtos.AssetStatusUnderReview},
		to:   dtos.AssetStatusApproved,
	},
	dtos.TransitionReject: {
		from: []dtos.AssetStatus{dtos.AssetStatusUnderReview},
		to:   dtos.AssetStatusRevisionRequired,
	},
	dtos.TransitionAcknowledgeRejection: {
		from: []dtos.AssetStatus{dtos.AssetStatusRevisionRequired},
		to:   dtos.AssetStatusNotSubmitted,
	},
	dtos.TransitionArchive: {
		from: []dtos.AssetStatus{dtos.AssetStatusApproved},
		to:   dtos.AssetStatusArchived,
	},
}

// NextAssetStatus returns the target state of method when applied to an
// asset in state from, or ErrInvalidTransition.
func NextAssetStatus(from dtos.AssetStatus, method dtos.TransitionMethod) (dtos.AssetStatus, error) {
	transition, ok := assetTransitions[method]
	if !ok {
		return "", ErrInvalidTransition
	}
	if !slices.Contains(transition.from, from) {
		return "", ErrInvalidTransition
	}
	return transition.to, nil
}

// GuardSubmit checks the submit preconditions beyond the source state:
// the latest non deleted version must exist and be finalized, and no
// draft may be open.
func GuardSubmit(asset models.Asset, latest *models.AssetVersion, hasDraft bool) error {
	if _, err := NextAssetStatus(asset.Status, dtos.TransitionSubmit); err != nil {
		return err
	}
	if latest == nil || latest.VersionStatus != dtos.VersionStatusFinalized || hasDraft {
		return ErrAssetNotReady
	}
	return nil
}

func CanSubmit(asset models.Asset, latest *models.AssetVersion, hasDraft bool) bool {
	return GuardSubmit(asset, latest, hasDraft) == nil
}

func canTransition(asset models.Asset, method dtos.TransitionMethod) bool {
	_, err := NextAssetStatus(asset.Status, method)
	return err == nil
}

func CanStartReview(asset models.Asset) bool {
	return canTransition(asset, dtos.TransitionStartReview)
}

func CanApprove(asset models.Asset) bool {
	return canTransition(asset, dtos.TransitionApprove)
}

func CanReject(asset models.Asset) bool {
	return canTransition(asset, dtos.TransitionReject)
}

func CanAcknowledgeRejection(asset models.Asset) bool {
	return canTransition(asset, dtos.TransitionAcknowledgeRejection)
}

func CanArchive(asset models.Asset) bool {
	return canTransition(asset, dtos.TransitionArchive)
}

// GuardCreateVersion checks whether a new draft version may be created
// for the asset.
func GuardCreateVersion(asset models.Asset, hasDraft bool) error {
	if asset.Status != dtos.AssetStatusNotSubmitted {
		return ErrInvalidTransition
	}
	if hasDraft {
		return ErrDraftAlreadyExists
	}
	return nil
}

func CanCreateVersion(asset models.Asset, hasDraft bool) bool {
	return GuardCreateVersion(asset, hasDraft) == nil
}

// AvailableAssetTransitions lists the transition methods whose guards
// currently pass for the asset.
func AvailableAssetTransitions(asset models.Asset, latest *models.AssetVersion, hasDraft bool) []dtos.TransitionMethod {
	available := make([]dtos.TransitionMethod, 0)
	for _, method := range []dtos.TransitionMethod{
		dtos.TransitionSubmit,
		dtos.TransitionStartReview,
		dtos.TransitionApprove,
		dtos.TransitionReject,
		dtos.TransitionAcknowledgeRejection,
		dtos.TransitionArchive,
	} {
		if method == dtos.TransitionSubmit {
			if CanSubmit(asset, latest, hasDraft) {
				available = append(available, method)
			}
			continue
		}
		if canTransition(asset, method) {
			available = append(available, method)
		}
	}
	return available
}
