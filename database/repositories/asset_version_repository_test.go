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

package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestVersion(t *testing.T) {
	t.Run("should return nil without any version", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetVersionRepository(db)

		latest, err := repository.LatestVersion(nil, uuid.New())

		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("should return the highest version number", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetVersionRepository(db)
		asset := createTestAsset(t, db, uuid.New(), "banner")
		createTestVersion(t, db, asset.ID, 1, dtos.VersionStatusFinalized)
		createTestVersion(t, db, asset.ID, 2, dtos.VersionStatusFinalized)
		createTestVersion(t, db, asset.ID, 3, dtos.VersionStatusDraft)

		latest, err := repository.LatestVersion(nil, asset.ID)

		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, 3, latest.VersionNumber)
	})

	t.Run("should skip tombstoned versions", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetVersionRepository(db)
		asset := createTestAsset(t, db, uuid.New(), "banner")
		createTestVersion(t, db, asset.ID, 1, dtos.VersionStatusFinalized)
		draft := createTestVersion(t, db, asset.ID, 2, dtos.VersionStatusDraft)

		require.NoError(t, repository.SoftDelete(nil, draft.ID))

		latest, err := repository.LatestVersion(nil, asset.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, 1, latest.VersionNumber)
	})

	t.Run("should not leak versions of other assets", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetVersionRepository(db)
		asset := createTestAsset(t, db, uuid.New(), "banner")
		other := createTestAsset(t, db, uuid.New(), "flyer")
		createTestVersion(t, db, other.ID, 5, dtos.VersionStatusFinalized)

		latest, err := repository.LatestVersion(nil, asset.ID)

		require.NoError(t, err)
		assert.Nil(t, latest)
	})
}

func TestHasDraftVersion(t *testing.T) {
	t.Run("should report an open draft", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetVersionRepository(db)
		asset := createTestAsset(t, db, uuid.New(), "banner")
		createTestVersion(t, db, asset.ID, 1, dtos.VersionStatusDraft)

		hasDraft, err := repository.HasDraftVersion(nil, asset.ID)

		require.NoError(t, err)
		assert.True(t, hasDraft)
	})

	t.Run("should not count finalized or tombstoned versions", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetVersionRepository(db)
		asset := createTestAsset(t, db, uuid.New(), "banner")
		createTestVersion(t, db, asset.ID, 1, dtos.VersionStatusFinalized)
		draft := createTestVersion(t, db, asset.ID, 2, dtos.VersionStatusDraft)
		require.NoError(t, repository.SoftDelete(nil, draft.ID))

		hasDraft, err := repository.HasDraftVersion(nil, asset.ID)

		require.NoError(t, err)
		assert.False(t, hasDraft)
	})
}

func TestNextVersionNumber(t *testing.T) {
	t.Run("should start at 1", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetVersionRepository(db)

		next, err := repository.NextVersionNumber(nil, uuid.New())

		require.NoError(t, err)
		assert.Equal(t, 1, next)
	})

	t.Run("should continue after the latest version", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetVersionRepository(db)
		asset := createTestAsset(t, db, uuid.New(), "banner")
		createTestVersion(t, db, asset.ID, 1, dtos.VersionStatusFinalized)
		createTestVersion(t, db, asset.ID, 2, dtos.VersionStatusFinalized)

		next, err := repository.NextVersionNumber(nil, asset.ID)

		require.NoError(t, err)
		assert.Equal(t, 3, next)
	})

	t.Run("should hand out a tombstoned number again", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetVersionRepository(db)
		asset := createTestAsset(t, db, uuid.New(), "banner")
		createTestVersion(t, db, asset.ID, 1, dtos.VersionStatusFinalized)
		draft := createTestVersion(t, db, asset.ID, 2, dtos.VersionStatusDraft)
		require.NoError(t, repository.SoftDelete(nil, draft.ID))

		next, err := repository.NextVersionNumber(nil, asset.ID)

		require.NoError(t, err)
		assert.Equal(t, 2, next)
	})
}
