package services

import (
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// the production schema comes from the migration files and uses postgres
// only defaults, so the sqlite test schema is spelled out by hand.
var testSchema = []string{
	`CREATE TABLE assets (
		id text PRIMARY KEY,
		created_at datetime,
		updated_at datetime,
		name text NOT NULL,
		slug text NOT NULL,
		project_id text NOT NULL,
		task_id text,
		description text,
		status text NOT NULL DEFAULT 'notSubmitted',
		metadata text,
		created_by text,
		deleted_at datetime
	)`,
	`CREATE TABLE asset_versions (
		id text PRIMARY KEY,
		created_at datetime,
		updated_at datetime,
		asset_id text NOT NULL,
		version_number integer NOT NULL,
		file_name text NOT NULL,
		size_bytes integer NOT NULL DEFAULT 0,
		checksum text NOT NULL,
		storage_key text NOT NULL,
		version_status text NOT NULL DEFAULT 'draft',
		scan_status text NOT NULL DEFAULT 'pending',
		uploaded_by text,
		deleted_at datetime
	)`,
	`CREATE TABLE asset_state_transitions (
		id text PRIMARY KEY,
		created_at datetime,
		updated_at datetime,
		asset_id text NOT NULL,
		from_state text NOT NULL,
		to_state text NOT NULL,
		transition_method text NOT NULL,
		triggered_by text,
		arbitrary_json_data text
	)`,
	`CREATE TABLE asset_version_state_transitions (
		id text PRIMARY KEY,
		created_at datetime,
		updated_at datetime,
		asset_version_id text NOT NULL,
		from_state text NOT NULL,
		to_state text NOT NULL,
		transition_method text NOT NULL,
		triggered_by text,
		arbitrary_json_data text
	)`,
}

func newTestDB(t *testing.T) shared.DB {
	t.Helper()

	db, err := gorm.Open(gormsqlite.Open(filepath.Join(t.TempDir(), "brandguard.sqlite")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func createTestAsset(t *testing.T, db shared.DB, status dtos.AssetStatus) models.Asset {
	t.Helper()

	asset := models.Asset{
		Name:      "Summer Campaign Banner",
		Slug:      "summer-campaign-banner",
		ProjectID: uuid.New(),
		Status:    status,
		CreatedBy: "user-alice",
	}
	require.NoError(t, db.Create(&asset).Error)
	return asset
}

func createTestVersion(t *testing.T, db shared.DB, assetID uuid.UUID, versionNumber int, versionStatus dtos.VersionStatus, scanStatus dtos.ScanStatus) models.AssetVersion {
	t.Helper()

	version := models.AssetVersion{
		AssetID:       assetID,
		VersionNumber: versionNumber,
		FileName:      "banner.png",
		SizeBytes:     42,
		Checksum:      "checksum-" + uuid.NewString(),
		StorageKey:    "key-" + uuid.NewString(),
		VersionStatus: versionStatus,
		ScanStatus:    scanStatus,
		UploadedBy:    "user-alice",
	}
	require.NoError(t, db.Create(&version).Error)
	return version
}
