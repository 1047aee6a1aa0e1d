package integration_tests

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/database/repositories"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/services"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/l3montree-dev/brandguard/statemachine"
	"github.com/l3montree-dev/brandguard/storage"
	"github.com/l3montree-dev/brandguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAsset(t *testing.T, db shared.DB, slug string) models.Asset {
	t.Helper()

	org := models.Org{Name: "ACME", Slug: "acme-" + slug}
	require.NoError(t, db.Create(&org).Error)
	project := models.Project{Name: "Website", Slug: "website-" + slug, OrganizationID: org.ID}
	require.NoError(t, db.Create(&project).Error)
	asset := models.Asset{Name: slug, Slug: slug, ProjectID: project.ID, Status: dtos.AssetStatusNotSubmitted}
	require.NoError(t, db.Create(&asset).Error)
	return asset
}

func TestWorkflowConcurrency(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, terminate := initDatabaseContainer()
	defer terminate()

	assetRepository := repositories.NewAssetRepository(db)
	assetVersionRepository := repositories.NewAssetVersionRepository(db)
	assetTransitionRepository := repositories.NewAssetTransitionRepository(db)
	assetVersionTransitionRepository := repositories.NewAssetVersionTransitionRepository(db)
	workflowService := services.NewWorkflowService(assetRepository, assetVersionRepository, assetTransitionRepository, assetVersionTransitionRepository, nil)

	fileStore, err := storage.NewDiskFileStore(t.TempDir())
	require.NoError(t, err)
	assetVersionService := services.NewAssetVersionService(assetRepository, assetVersionRepository, fileStore)

	t.Run("only one of many concurrent submissions wins", func(t *testing.T) {
		asset := seedAsset(t, db, "banner")
		version := models.AssetVersion{
			AssetID:       asset.ID,
			VersionNumber: 1,
			FileName:      "banner.png",
			Checksum:      uuid.NewString(),
			StorageKey:    uuid.NewString(),
			VersionStatus: dtos.VersionStatusFinalized,
			ScanStatus:    dtos.ScanStatusClean,
		}
		require.NoError(t, db.Create(&version).Error)

		const attempts = 8
		errs := make(chan error, attempts)
		var wg sync.WaitGroup
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := workflowService.SubmitAsset(asset.ID, utils.Ptr("user-alice"))
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		succeeded := 0
		for err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
			}
		}
		assert.Equal(t, 1, succeeded)

		updated, err := assetRepository.Read(asset.ID)
		require.NoError(t, err)
		assert.Equal(t, dtos.AssetStatusPendingReview, updated.Status)

		transitions, err := assetTransitionRepository.GetByAssetID(asset.ID)
		require.NoError(t, err)
		assert.Len(t, transitions, 1)
	})

	t.Run("only one of many concurrent uploads opens a draft", func(t *testing.T) {
		asset := seedAsset(t, db, "flyer")

		const attempts = 8
		errs := make(chan error, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := assetVersionService.CreateVersion(asset, "flyer.pdf", []byte{byte(i)}, "user-alice")
				errs <- err
			}(i)
		}
		wg.Wait()
		close(errs)

		succeeded := 0
		for err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, statemachine.ErrDraftAlreadyExists)
			}
		}
		assert.Equal(t, 1, succeeded)

		versions, err := assetVersionRepository.GetByAssetID(asset.ID)
		require.NoError(t, err)
		require.Len(t, versions, 1)
		assert.Equal(t, 1, versions[0].VersionNumber)
	})
}
