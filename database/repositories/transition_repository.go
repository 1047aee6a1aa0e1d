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
	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/shared"
)

type assetTransitionRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.AssetStateTransition]
}

func NewAssetTransitionRepository(db shared.DB) *assetTransitionRepository {
	return &assetTransitionRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AssetStateTransition](db),
	}
}

func (repository *assetTransitionRepository) GetByAssetID(assetID uuid.UUID) ([]models.AssetStateTransition, error) {
	var transitions []models.AssetStateTransition
	err := repository.db.Where("asset_id = ?", assetID).Order("created_at ASC").Find(&transitions).Error
	return transitions, err
}

func (repository *assetTransitionRepository) GetByAssetIDPaged(pageInfo shared.PageInfo, assetID uuid.UUID) (shared.Paged[models.AssetStateTransition], error) {
	var count int64
	var transitions []models.AssetStateTransition

	query := repository.db.Model(&models.AssetStateTransition{}).Where("asset_id = ?", assetID)

	err := query.Count(&count).Error
	if err != nil {
		return shared.Paged[models.AssetStateTransition]{}, err
	}

	err = pageInfo.ApplyOnDB(repository.db).
		Where("asset_id = ?", assetID).
		Order("created_at ASC").
		Find(&transitions).Error
	if err != nil {
		return shared.Paged[models.AssetStateTransition]{}, err
	}

	return shared.NewPaged(pageInfo, count, transitions), nil
}

type assetVersionTransitionRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.AssetVersionStateTransition]
}

func NewAssetVersionTransitionRepository(db shared.DB) *assetVersionTransitionRepository {
	return &assetVersionTransitionRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AssetVersionStateTransition](db),
	}
}

func (repository *assetVersionTransitionRepository) GetByAssetVersionID(assetVersionID uuid.UUID) ([]models.AssetVersionStateTransition, error) {
	var transitions []models.AssetVersionStateTransition
	err := repository.db.Where("asset_version_id = ?", assetVersionID).Order("created_at ASC").Find(&transitions).Error
	return transitions, err
}

func (repository *assetVersionTransitionRepository) GetByAssetVersionIDPaged(pageInfo shared.PageInfo, assetVersionID uuid.UUID) (shared.Paged[models.AssetVersionStateTransition], error) {
	var count int64
	var transitions []models.AssetVersionStateTransition

	query := repository.db.Model(&models.AssetVersionStateTransition{}).Where("asset_version_id = ?", assetVersionID)

	err := query.Count(&count).Error
	if err != nil {
		return shared.Paged[models.AssetVersionStateTransition]{}, err
	}

	err = pageInfo.ApplyOnDB(repository.db).
		Where("asset_version_id = ?", assetVersionID).
		Order("created_at ASC").
		Find(&transitions).Error
	if err != nil {
		return shared.Paged[models.AssetVersionStateTransition]{}, err
	}

	return shared.NewPaged(pageInfo, count, transitions), nil
}
