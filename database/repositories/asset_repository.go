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

type assetRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.Asset]
}

func NewAssetRepository(db shared.DB) *assetRepository {
	return &assetRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Asset](db),
	}
}

func (repository *assetRepository) ReadForUpdate(tx shared.DB, id uuid.UUID) (models.Asset, error) {
	var asset models.Asset
	err := lockForUpdate(repository.GetDB(tx)).First(&asset, "id = ?", id).Error
	return asset, err
}

func (repository *assetRepository) ReadBySlug(projectID uuid.UUID, slug string) (models.Asset, error) {
	var asset models.Asset
	err := repository.db.Where("slug = ? AND project_id = ?", slug, projectID).First(&asset).Error
	return asset, err
}

func (repository *assetRepository) GetByProjectID(projectID uuid.UUID) ([]models.Asset, error) {
	var assets []models.Asset
	err := repository.db.Where("project_id = ?", projectID).Order("created_at ASC").Find(&assets).Error
	return assets, err
}

func (repository *assetRepository) GetByOrgID(organizationID uuid.UUID) ([]models.Asset, error) {
	var assets []models.Asset
	err := repository.db.
		Joins("JOIN projects ON projects.id = assets.project_id").
		Where("projects.organization_id = ?", organizationID).
		Order("assets.created_at ASC").
		Find(&assets).Error
	return assets, err
}
