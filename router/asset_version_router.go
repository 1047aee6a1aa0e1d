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

package router

import (
	"github.com/l3montree-dev/brandguard/controllers"
	"github.com/l3montree-dev/brandguard/middlewares"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/labstack/echo/v4"
)

type AssetVersionRouter struct {
	*echo.Group
}

func NewAssetVersionRouter(
	assetGroup AssetRouter,
	assetVersionController *controllers.AssetVersionController,
	scanController *controllers.ScanController,
	assetVersionRepository shared.AssetVersionRepository,
) AssetVersionRouter {
	assetGroup.Group.GET("/versions/", assetVersionController.List)
	assetGroup.Group.POST("/versions/", assetVersionController.Create, middlewares.AccessControl(shared.ObjectAsset, shared.ActionUpdate))

	/**
	Asset version scoped router
	All routes below this line are scoped to a specific version.
	*/
	versionRouter := assetGroup.Group.Group("/versions/:versionID",
		middlewares.AssetVersionMiddleware(assetVersionRepository))

	versionRouter.GET("/", assetVersionController.Read)
	versionRouter.GET("/file/", assetVersionController.Download)
	versionRouter.GET("/transitions/", assetVersionController.Transitions)

	versionUpdateRequired := versionRouter.Group("", middlewares.AccessControl(shared.ObjectAsset, shared.ActionUpdate))
	versionUpdateRequired.PUT("/file/", assetVersionController.Update)
	versionUpdateRequired.DELETE("/", assetVersionController.Delete)
	versionUpdateRequired.POST("/finalize/", assetVersionController.Finalize)

	// scan callbacks, reported by the external scanner
	scanRouter := versionRouter.Group("/scan", middlewares.NeededScope([]string{"scan"}), middlewares.AccessControl(shared.ObjectAsset, shared.ActionUpdate))
	scanRouter.POST("/start/", scanController.Start)
	scanRouter.POST("/clean/", scanController.ReportClean)
	scanRouter.POST("/infected/", scanController.ReportInfected)
	scanRouter.POST("/error/", scanController.ReportError)

	return AssetVersionRouter{Group: versionRouter}
}
