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

import "github.com/pkg/errors"

var (
	// ErrInvalidTransition is returned when the entity is not in a state
	// the requested transition may start from.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrFinalizeNotAllowed is returned when a draft version is finalized
	// before its scan came back clean.
	ErrFinalizeNotAllowed = errors.New("finalize requires a clean scan")
	// ErrCannotDeleteFinalized is returned when a finalized version is deleted.
	ErrCannotDeleteFinalized = errors.New("cannot delete a finalized version")
	// ErrCannotUpdateFinalized is returned when a finalized version is updated.
	ErrCannotUpdateFinalized = errors.New("cannot update a finalized version")
	// ErrDraftAlreadyExists is returned when a second draft version would be
	// created for the same asset.
	ErrDraftAlreadyExists = errors.New("asset already has a draft version")
	// ErrAssetNotReady is returned when an asset is submitted without a
	// finalized latest version, or while a draft is still open.
	ErrAssetNotReady = errors.New("asset is not ready for submission")
	// ErrFileUnchanged is returned when an update carries a file with the
	// same checksum as the stored one.
	ErrFileUnchanged = errors.New("uploaded file is identical to the stored one")
	// ErrDuplicateVersionNumber is returned when the version number is
	// already taken by a non deleted version of the same asset.
	ErrDuplicateVersionNumber = errors.New("version number already exists for this asset")
)
