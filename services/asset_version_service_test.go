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
	"testing"

	"github.com/l3montree-dev/brandguard/database/repositories"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/l3montree-dev/brandguard/statemachine"
	"github.com/l3montree-dev/brandguard/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssetVersionService(t *testing.T, db shared.DB) *assetVersionService {
	t.Helper()

	fileStore, err := storage.NewDiskFileStore(t.TempDir())
	require.NoError(t, err)
	return NewAssetVersionService(
		repositories.NewAssetRepository(db),
		repositories.NewAssetVersionRepository(db),
		fileStore,
	)
}

func TestCreateVersion(t *testing.T) {
	t.Run("should create the first draft version with number 1", func(t *testing.T) {
		db := newTestDB(t)
		service := newTestAssetVersionService(t, db)
		asset := createTestAsset(t, db, dtos.AssetStatusNotSubmitted)

		version, err := service.CreateVersion(asset, "banner.png", []byte("png bytes"), "user-alice")

		require.NoError(t, err)
		assert.Equal(t, 1, version.VersionNumber)
		assert.Equal(t, dtos.VersionStatusDraft, version.VersionStatus)
		assert.Equal(t, dtos.ScanStatusPending, version.ScanStatus)
		assert.Equal(t, int64(len("png bytes")), version.SizeBytes)
		assert.Equal(t, "user-alice", version.UploadedBy)
		assert.Equal(t, version.Checksum, version.StorageKey)

		content, err := service.fileStore.Get(version.StorageKey)
		require.NoError(t, err)
		assert.Equal(t, []byte("png bytes"), content)
	})

	t.Run("should number versions sequentially", func(t *testing.T) {
		db := newTestDB(t)
		service := newTestAssetVersionService(t, db)
		workflow := newTestWorkflowService(db)
		asset := createTestAsset(t, db, dtos.AssetStatusNotSubmitted)

		first, err := service.CreateVersion(asset, "banner.png", []byte("v1"), "user-alice")
		require.NoError(t, err)

		// the draft has to leave the draft state before the next upload
		_, err = workflow.StartScan(first.ID, nil)
		require.NoError(t, err)
		_, err = workflow.MarkClean(first.ID, nil)
		require.NoError(t, err)
		_, err = workflow.FinalizeVersion(first.ID, nil)
		require.NoError(t, err)

		second, err := service.CreateVersion(asset, "banner.png", []byte("v2"), "user-alice")
		require.NoError(t, err)
		assert.Equal(t, 2, second.VersionNumber)
	})

	t.Run("should refuse a second open draft", func(t *testing.T) {
		db := newTestDB(t)
		service := newTestAssetVersionService(t, db)
		asset := createTestAsset(t, db, dtos.AssetStatusNotSubmitted)

		_, err := service.CreateVersion(asset, "banner.png", []byte("v1"), "user-alice")
		require.NoError(t, err)

		_, err = service.CreateVersion(asset, "banner.png", []byte("v2"), "user-alice")
		assert.ErrorIs(t, err, statemachine.ErrDraftAlreadyExists)
	})

	t.Run("should refuse uploads while the asset is in review", func(t *testing.T) {
		db := newTestDB(t)
		service := newTestAssetVersionService(t, db)
		asset := createTestAsset(t, db, dtos.AssetStatusPendingReview)

		_, err := service.CreateVersion(asset, "banner.png", []byte("v1"), "user-alice")

		assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
	})
}

func TestUpdateVersion(t *testing.T) {
	t.Run("should replace the file and reset the scan result", func(t *testing.T) {
		db := newTestDB(t)
		service := newTestAssetVersionService(t, db)
		workflow := newTestWorkflowService(db)
		asset := createTestAsset(t, db, dtos.AssetStatusNotSubmitted)

		version, err := service.CreateVersion(asset, "banner.png", []byte("v1"), "user-alice")
		require.NoError(t, err)
		_, err = workflow.StartScan(version.ID, nil)
		require.NoError(t, err)
		_, err = workflow.MarkClean(version.ID, nil)
		require.NoError(t, err)

		updated, err := service.UpdateVersion(version.ID, "banner-fixed.png", []byte("v1 fixed"), "user-bob")

		require.NoError(t, err)
		assert.Equal(t, "banner-fixed.png", updated.FileName)
		assert.Equal(t, "user-bob", updated.UploadedBy)
		assert.NotEqual(t, version.Checksum, updated.Checksum)
		// the old scan result does not vouch for the new file
		assert.Equal(t, dtos.ScanStatusPending, updated.ScanStatus)
	})

	t.Run("should refuse an unchanged file", func(t *testing.T) {
		db := newTestDB(t)
		service := newTestAssetVersionService(t, db)
		asset := createTestAsset(t, db, dtos.AssetStatusNotSubmitted)

		version, err := service.CreateVersion(asset, "banner.png", []byte("v1"), "user-alice")
		require.NoError(t, err)

		_, err = service.UpdateVersion(version.ID, "renamed.png", []byte("v1"), "user-alice")

		assert.ErrorIs(t, err, statemachine.ErrFileUnchanged)
	})

	t.Run("should refuse updating a finalized version", func(t *testing.T) {
		db := newTestDB(t)
		service := newTestAssetVersionService(t, db)
		asset := createTestAsset(t, db, dtos.AssetStatusNotSubmitted)
		version := createTestVersion(t, db, asset.ID, 1, dtos.VersionStatusFinalized, dtos.ScanStatusClean)

		_, err := service.UpdateVersion(version.ID, "banner.png", []byte("new content"), "user-alice")

		assert.ErrorIs(t, err, statemachine.ErrCannotUpdateFinalized)
	})
}

func TestDeleteVersion(t *testing.T) {
	t.Run("should tombstone a draft and free its number", func(t *testing.T) {
		db := newTestDB(t)
		service := newTestAssetVersionService(t, db)
		assetVersionRepository := repositories.NewAssetVersionRepository(db)
		asset := createTestAsset(t, db, dtos.AssetStatusNotSubmitted)
		createTestVersion(t, db, asset.ID, 1, dtos.VersionStatusFinalized, dtos.ScanStatusClean)

		draft, err := service.CreateVersion(asset, "banner.png", []byte("v2"), "user-alice")
		require.NoError(t, err)
		require.Equal(t, 2, draft.VersionNumber)

		require.NoError(t, service.DeleteVersion(draft.ID))

		latest, err := assetVersionRepository.LatestVersion(nil, asset.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, 1, latest.VersionNumber)

		// the next upload takes the freed number again
		next, err := service.CreateVersion(asset, "banner.png", []byte("v2 again"), "user-alice")
		require.NoError(t, err)
		assert.Equal(t, 2, next.VersionNumber)
	})

	t.Run("should refuse deleting a finalized version", func(t *testing.T) {
		db := newTestDB(t)
		service := newTestAssetVersionService(t, db)
		asset := createTestAsset(t, db, dtos.AssetStatusNotSubmitted)
		version := createTestVersion(t, db, asset.ID, 1, dtos.VersionStatusFinalized, dtos.ScanStatusClean)

		err := service.DeleteVersion(version.ID)

		assert.ErrorIs(t, err, statemachine.ErrCannotDeleteFinalized)
	})
}
