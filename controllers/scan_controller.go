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

	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/l3montree-dev/brandguard/utils"
	"github.com/labstack/echo/v4"
)

// ScanController is the callback surface for the external malware
// scanner. The scanner reports state, brandguard never scans itself.
type ScanController struct {
	workflowService shared.WorkflowService
}

func NewScanController(workflowService shared.WorkflowService) *ScanController {
	return &ScanController{
		workflowService: workflowService,
	}
}

func (c *ScanController) triggeredBy(ctx shared.Context) *string {
	session := shared.GetSession(ctx)
	return utils.EmptyThenNil(session.GetUserID())
}

func (c *ScanController) Start(ctx shared.Context) error {
	version := shared.GetAssetVersion(ctx)
	updated, err := c.workflowService.StartScan(version.ID, c.triggeredBy(ctx))
	if err != nil {
		return transitionHTTPError("could not start scan", err)
	}
	return ctx.JSON(200, assetVersionToDTO(updated))
}

func (c *ScanController) ReportClean(ctx shared.Context) error {
	version := shared.GetAssetVersion(ctx)
	updated, err := c.workflowService.MarkClean(version.ID, c.triggeredBy(ctx))
	if err != nil {
		return transitionHTTPError("could not mark version clean", err)
	}
	return ctx.JSON(200, assetVersionToDTO(updated))
}

func (c *ScanController) ReportInfected(ctx shared.Context) error {
	version := shared.GetAssetVersion(ctx)

	var req dtos.MarkInfectedRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated, err := c.workflowService.MarkInfected(version.ID, c.triggeredBy(ctx), req.VirusName)
	if err != nil {
		return transitionHTTPError("could not mark version infected", err)
	}
	return ctx.JSON(200, assetVersionToDTO(updated))
}

func (c *ScanController) ReportError(ctx shared.Context) error {
	version := shared.GetAssetVersion(ctx)

	var req dtos.MarkErrorRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated, err := c.workflowService.MarkError(version.ID, c.triggeredBy(ctx), req.ErrorMessage)
	if err != nil {
		return transitionHTTPError("could not mark scan error", err)
	}
	return ctx.JSON(200, assetVersionToDTO(updated))
}
