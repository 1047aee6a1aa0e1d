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

package controllers

import (
	"io"

	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/l3montree-dev/brandguard/utils"
	"github.com/labstack/echo/v4"
)

// 50 MiB upload ceiling, enough for print ready artwork
const maxUploadSize = 50 << 20

type AssetVersionController struct {
	assetVersionRepository           shared.AssetVersionRepository
	assetVersionTransitionRepository shared.AssetVersionTransitionRepository
	assetVersionService              shared.AssetVersionService
	workflowService                  shared.WorkflowService
	fileStore                        shared.FileStore
}

func NewAssetVersionController(
	assetVersionRepository shared.AssetVersionRepository,
	assetVersionTransitionRepository shared.AssetVersionTransitionRepository,
	assetVersionService shared.AssetVersionService,
	workflowService shared.WorkflowService,
	fileStore shared.FileStore,
) *AssetVersionController {
	return &AssetVersionController{
		assetVersionRepository:           assetVersionRepository,
		assetVersionTransitionRepository: assetVersionTransitionRepository,
		assetVersionService:              assetVersionService,
		workflowService:                  workflowService,
		fileStore:                        fileStore,
	}
}

func readUpload(ctx shared.Context) (fileName string, content []byte, err error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return "", nil, echo.NewHTTPError(400, "file is required").WithInternal(err)
	}
	if fileHeader.Size > maxUploadSize {
		return "", nil, echo.NewHTTPError(413, "file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, echo.NewHTTPError(500, "could not read upload").WithInternal(err)
	}
	defer file.Close()

	content, err = io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return "", nil, echo.NewHTTPError(500, "could not read upload").WithInternal(err)
	}
	if len(content) > maxUploadSize {
		return "", nil, echo.NewHTTPError(413, "file too large")
	}
	return fileHeader.Filename, content, nil
}

func (c *AssetVersionController) Create(ctx shared.Context) error {
	asset := shared.GetAsset(ctx)
	session := shared.GetSession(ctx)

	fileName, content, err := readUpload(ctx)
	if err != nil {
		return err
	}

	version, err := c.assetVersionService.CreateVersion(asset, fileName, content, session.GetUserID())
	if err != nil {
		return transitionHTTPError("could not create version", err)
	}
	return ctx.JSON(201, assetVersionToDTO(version))
}

func (c *AssetVersionController) List(ctx shared.Context) error {
	asset := shared.GetAsset(ctx)
	versions, err := c.assetVersionRepository.GetByAssetID(asset.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list versions").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(versions, assetVersionToDTO))
}

func (c *AssetVersionController) Read(ctx shared.Context) error {
	version := shared.GetAssetVersion(ctx)
	return ctx.JSON(200, assetVersionToDTO(version))
}

func (c *AssetVersionController) Download(ctx shared.Context) error {
	version := shared.GetAssetVersion(ctx)
	content, err := c.fileStore.Get(version.StorageKey)
	if err != nil {
		return echo.NewHTTPError(500, "could not read stored file").WithInternal(err)
	}
	ctx.Response().Header().Set("Content-Disposition", `attachment; filename="`+version.FileName+`"`)
	return ctx.Blob(200, "application/octet-stream", content)
}

func (c *AssetVersionController) Update(ctx shared.Context) error {
	version := shared.GetAssetVersion(ctx)
	session := shared.GetSession(ctx)

	fileName, content, err := readUpload(ctx)
	if err != nil {
		return err
	}

	updated, err := c.assetVersionService.UpdateVersion(version.ID, fileName, content, session.GetUserID())
	if err != nil {
		return transitionHTTPError("could not update version", err)
	}
	return ctx.JSON(200, assetVersionToDTO(updated))
}

func (c *AssetVersionController) Delete(ctx shared.Context) error {
	version := shared.GetAssetVersion(ctx)
	if err := c.assetVersionService.DeleteVersion(version.ID); err != nil {
		return transitionHTTPError("could not delete version", err)
	}
	return ctx.NoContent(204)
}

func (c *AssetVersionController) Finalize(ctx shared.Context) error {
	version := shared.GetAssetVersion(ctx)
	session := shared.GetSession(ctx)

	finalized, err := c.workflowService.FinalizeVersion(version.ID, utils.EmptyThenNil(session.GetUserID()))
	if err != nil {
		return transitionHTTPError("could not finalize version", err)
	}
	return ctx.JSON(200, assetVersionToDTO(finalized))
}

func (c *AssetVersionController) Transitions(ctx shared.Context) error {
	version := shared.GetAssetVersion(ctx)
	paged, err := c.assetVersionTransitionRepository.GetByAssetVersionIDPaged(shared.GetPageInfo(ctx), version.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not get transition history").WithInternal(err)
	}
	return ctx.JSON(200, paged.Map(func(transition models.AssetVersionStateTransition) any {
		return assetVersionTransitionToDTO(transition)
	}))
}
