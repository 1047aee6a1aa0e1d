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
	"fmt"

	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/l3montree-dev/brandguard/utils"
	"github.com/labstack/echo/v4"
)

type AssetController struct {
	assetRepository           shared.AssetRepository
	assetTransitionRepository shared.AssetTransitionRepository
	assetService              shared.AssetService
	workflowService           shared.WorkflowService
}

func NewAssetController(assetRepository shared.AssetRepository, assetTransitionRepository shared.AssetTransitionRepository, assetService shared.AssetService, workflowService shared.WorkflowService) *AssetController {
	return &AssetController{
		assetRepository:           assetRepository,
		assetTransitionRepository: assetTransitionRepository,
		assetService:              assetService,
		workflowService:           workflowService,
	}
}

func (c *AssetController) Create(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	session := shared.GetSession(ctx)

	var req dtos.CreateAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	asset, err := c.assetService.CreateAsset(project, req, session.GetUserID())
	if err != nil {
		return echo.NewHTTPError(500, "could not create asset").WithInternal(err)
	}
	return ctx.JSON(201, assetToDTO(asset))
}

func (c *AssetController) Read(ctx shared.Context) error {
	asset := shared.GetAsset(ctx)
	return ctx.JSON(200, assetToDTO(asset))
}

func (c *AssetController) List(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	assets, err := c.assetRepository.GetByProjectID(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list assets").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(assets, assetToDTO))
}

func (c *AssetController) Update(ctx shared.Context) error {
	asset := shared.GetAsset(ctx)

	var req dtos.PatchAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := c.assetService.UpdateAsset(&asset, req); err != nil {
		return echo.NewHTTPError(500, "could not update asset").WithInternal(err)
	}
	return ctx.JSON(200, assetToDTO(asset))
}

func (c *AssetController) Delete(ctx shared.Context) error {
	asset := shared.GetAsset(ctx)
	if err := c.assetService.DeleteAsset(asset); err != nil {
		return echo.NewHTTPError(500, "could not delete asset").WithInternal(err)
	}
	return ctx.NoContent(204)
}

func (c *AssetController) triggeredBy(ctx shared.Context) *string {
	session := shared.GetSession(ctx)
	return utils.EmptyThenNil(session.GetUserID())
}

func (c *AssetController) Submit(ctx shared.Context) error {
	asset, err := c.workflowService.SubmitAsset(shared.GetAsset(ctx).ID, c.triggeredBy(ctx))
	if err != nil {
		return transitionHTTPError("could not submit asset", err)
	}
	return ctx.JSON(200, assetToDTO(asset))
}

func (c *AssetController) StartReview(ctx shared.Context) error {
	asset, err := c.workflowService.StartReview(shared.GetAsset(ctx).ID, c.triggeredBy(ctx))
	if err != nil {
		return transitionHTTPError("could not start review", err)
	}
	return ctx.JSON(200, assetToDTO(asset))
}

func (c *AssetController) Approve(ctx shared.Context) error {
	asset, err := c.workflowService.ApproveAsset(shared.GetAsset(ctx).ID, c.triggeredBy(ctx))
	if err != nil {
		return transitionHTTPError("could not approve asset", err)
	}
	return ctx.JSON(200, assetToDTO(asset))
}

func (c *AssetController) Reject(ctx shared.Context) error {
	var req dtos.RejectAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	asset, err := c.workflowService.RejectAsset(shared.GetAsset(ctx).ID, c.triggeredBy(ctx), req.Reason)
	if err != nil {
		return transitionHTTPError("could not reject asset", err)
	}
	return ctx.JSON(200, assetToDTO(asset))
}

func (c *AssetController) AcknowledgeRejection(ctx shared.Context) error {
	var req dtos.AcknowledgeRejectionRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	asset, err := c.workflowService.AcknowledgeRejection(shared.GetAsset(ctx).ID, c.triggeredBy(ctx), req.Reason)
	if err != nil {
		return transitionHTTPError("could not acknowledge rejection", err)
	}
	return ctx.JSON(200, assetToDTO(asset))
}

func (c *AssetController) Archive(ctx shared.Context) error {
	asset, err := c.workflowService.ArchiveAsset(shared.GetAsset(ctx).ID, c.triggeredBy(ctx))
	if err != nil {
		return transitionHTTPError("could not archive asset", err)
	}
	return ctx.JSON(200, assetToDTO(asset))
}

func (c *AssetController) AvailableTransitions(ctx shared.Context) error {
	methods, err := c.workflowService.GetAvailableTransitions(shared.GetAsset(ctx).ID)
	if err != nil {
		return transitionHTTPError("could not determine available transitions", err)
	}
	return ctx.JSON(200, methods)
}

func (c *AssetController) Transitions(ctx shared.Context) error {
	asset := shared.GetAsset(ctx)
	paged, err := c.assetTransitionRepository.GetByAssetIDPaged(shared.GetPageInfo(ctx), asset.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not get transition history").WithInternal(err)
	}
	return ctx.JSON(200, paged.Map(func(transition models.AssetStateTransition) any {
		return assetTransitionToDTO(transition)
	}))
}
