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
	"errors"

	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/shared"
	"gorm.io/gorm"
)

type assetVersionRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.AssetVersion]
}

func NewAssetVersionRepository(db shared.DB) *assetVersionRepository {
	return &assetVersionRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AssetVersion](db),
	}
}

func (repository *assetVersionRepository) ReadForUpdate(tx shared.DB, id uuid.UUID) (models.AssetVersion, error) {
	var assetVersion models.AssetVersion
	err := lockForUpdate(repository.GetDB(tx)).First(&assetVersion, "id = ?", id).Error
	return assetVersion, err
}

func (repository *assetVersionRepository) GetByAssetID(assetID uuid.UUID) ([]models.AssetVersion, error) {
	var assetVersions []models.AssetVersion
	err := repository.db.Where("asset_id = ?", assetID).Order("version_number ASC").Find(&assetVersions).Error
	return assetVersions, err
}

// LatestVersion returns the non deleted version with the highest version
// number, or nil if the asset has no versions yet. Soft deleted versions
// are invisible through the default gorm scope.
func (repository *assetVersionRepository) LatestVersion(tx shared.DB, assetID uuid.UUID) (*models.AssetVersion, error) {
	var assetVersion models.AssetVersion
	err := repository.GetDB(tx).
		Where("asset_id = ?", assetID).
		Order("version_number DESC").
		First(&assetVersion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assetVersion, nil
}

func (repository *assetVersionRepository) HasDraftVersion(tx shared.DB, assetID uuid.UUID) (bool, error) {
	var count int64
	err := repository.GetDB(tx).Model(&models.AssetVersion{}).
		Where("asset_id = ? AND version_status = ?", assetID, dtos.VersionStatusDraft).
		Count(&count).Error
	return count > 0, err
}

func (repository *assetVersionRepository) NextVersionNumber(tx shared.DB, assetID uuid.UUID) (int, error) {
	latest, err := repository.LatestVersion(tx, assetID)
	if err != nil {
		return 0, err
	}
	if latest == nil {
		return 1, nil
	}
	return latest.VersionNumber + 1, nil
}

func (repository *assetVersionRepository) VersionNumberExists(tx shared.DB, assetID uuid.UUID, versionNumber int) (bool, error) {
	var count int64
	err := repository.GetDB(tx).Model(&models.AssetVersion{}).
		Where("asset_id = ? AND version_number = ?", assetID, versionNumber).
		Count(&count).Error
	return count > 0, err
}

// SoftDelete tombstones the version. The row stays around so the audit
// timeline keeps its reference.
func (repository *assetVersionRepository) SoftDelete(tx shared.DB, id uuid.UUID) error {
	return repository.GetDB(tx).Delete(&models.AssetVersion{}, "id = ?", id).Error
}
