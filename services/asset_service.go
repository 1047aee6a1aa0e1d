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
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/brandguard/database/models"
	databasetypes "github.com/l3montree-dev/brandguard/database/types"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/shared"
)

type assetService struct {
	assetRepository shared.AssetRepository
}

func NewAssetService(assetRepository shared.AssetRepository) *assetService {
	return &assetService{
		assetRepository: assetRepository,
	}
}

func (service *assetService) CreateAsset(project models.Project, req dtos.CreateAssetRequest, userID string) (models.Asset, error) {
	asset := models.Asset{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		ProjectID:   project.ID,
		TaskID:      req.TaskID,
		Description: req.Description,
		Status:      dtos.AssetStatusNotSubmitted,
		Metadata:    databasetypes.JSONB(req.Metadata),
		CreatedBy:   userID,
	}

	err := service.assetRepository.Create(nil, &asset)
	return asset, err
}

func (service *assetService) UpdateAsset(asset *models.Asset, req dtos.PatchAssetRequest) error {
	if req.Name != nil {
		asset.Name = *req.Name
		asset.Slug = slug.Make(*req.Name)
	}
	if req.Description != nil {
		asset.Description = *req.Description
	}
	if req.TaskID != nil {
		asset.TaskID = req.TaskID
	}
	if req.Metadata != nil {
		asset.Metadata = databasetypes.JSONB(*req.Metadata)
	}
	return service.assetRepository.Save(nil, asset)
}

func (service *assetService) DeleteAsset(asset models.Asset) error {
	return service.assetRepository.Delete(nil, asset.ID)
}
