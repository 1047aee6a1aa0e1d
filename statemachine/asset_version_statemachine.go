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

type scanTransition struct {
	from []dtos.ScanStatus
	to   dtos.ScanStatus
}

var scanTransitions = map[dtos.TransitionMethod]scanTransition{
	dtos.TransitionStartScan: {
		from: []dtos.ScanStatus{dtos.ScanStatusPending},
		to:   dtos.ScanStatusScanning,
	},
	dtos.TransitionMarkClean: {
		from: []dtos.ScanStatus{dtos.ScanStatusScanning},
		to:   dtos.ScanStatusClean,
	},
	dtos.TransitionMarkInfected: {
		from: []dtos.ScanStatus{dtos.ScanStatusScanning},
		to:   dtos.ScanStatusInfected,
	},
	dtos.TransitionMarkError: {
		from: []dtos.ScanStatus{dtos.ScanStatusPending, dtos.ScanStatusScanning},
		to:   dtos.ScanStatusError,
	},
}

// NextScanStatus returns the target scan state of method when applied to
// a version whose scan is in state from, or ErrInvalidTransition.
func NextScanStatus(from dtos.ScanStatus, method dtos.TransitionMethod) (dtos.ScanStatus, error) {
	transition, ok := scanTransitions[method]
	if !ok {
		return "", ErrInvalidTransition
	}
	if !slices.Contains(transition.from, from) {
		return "", ErrInvalidTransition
	}
	return transition.to, nil
}

// GuardFinalize checks whether the version may leave the draft state.
// Only a clean scan result unlocks finalization.
func GuardFinalize(version models.AssetVersion) error {
	if version.VersionStatus != dtos.VersionStatusDraft {
		return ErrInvalidTransition
	}
	if version.ScanStatus != dtos.ScanStatusClean {
		return ErrFinalizeNotAllowed
	}
	return nil
}

func CanFinalize(version models.AssetVersion) bool {
	return GuardFinalize(version) == nil
}

// GuardUpdate rejects file updates on finalized versions and updates
// that carry an unchanged file.
func GuardUpdate(version models.AssetVersion, newChecksum string) error {
	if version.VersionStatus != dtos.VersionStatusDraft {
		return ErrCannotUpdateFinalized
	}
	if version.Checksum == newChecksum {
		return ErrFileUnchanged
	}
	return nil
}

func GuardDelete(version models.AssetVersion) error {
	if version.VersionStatus != dtos.VersionStatusDraft {
		return ErrCannotDeleteFinalized
	}
	return nil
}

func CanDelete(version models.AssetVersion) bool {
	return GuardDelete(version) == nil
}
