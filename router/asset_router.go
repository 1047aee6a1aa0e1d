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

type AssetRouter struct {
	*echo.Group
}

func NewAssetRouter(
	projectGroup ProjectRouter,
	assetController *controllers.AssetController,
	assetRepository shared.AssetRepository,
) AssetRouter {
	/**
	Asset scoped router
	All routes below this line are scoped to a specific asset.
	*/
	assetRouter := projectGroup.Group.Group("/assets/:assetSlug",
		middlewares.AssetMiddleware(assetRepository),
		middlewares.AccessControl(shared.ObjectAsset, shared.ActionRead))

	assetRouter.GET("/", assetController.Read)
	assetRouter.GET("/transitions/", assetController.Transitions)
	assetRouter.GET("/available-transitions/", assetController.AvailableTransitions)

	assetRouter.PATCH("/", assetController.Update, middlewares.NeededScope([]string{"manage"}), middlewares.AccessControl(shared.ObjectAsset, shared.ActionUpdate))
	assetRouter.DELETE("/", assetController.Delete, middlewares.NeededScope([]string{"manage"}), middlewares.AccessControl(shared.ObjectAsset, shared.ActionDelete))

	// author side of the approval workflow
	authorRequired := assetRouter.Group("", middlewares.AccessControl(shared.ObjectAsset, shared.ActionUpdate))
	authorRequired.POST("/submit/", assetController.Submit)
	authorRequired.POST("/acknowledge-rejection/", assetController.AcknowledgeRejection)

	// reviewer side of the approval workflow
	reviewRequired := assetRouter.Group("", middlewares.AccessControl(shared.ObjectAsset, shared.ActionReview))
	reviewRequired.POST("/start-review/", assetController.StartReview)
	reviewRequired.POST("/approve/", assetController.Approve)
	reviewRequired.POST("/reject/", assetController.Reject)
	reviewRequired.POST("/archive/", assetController.Archive)

	return AssetRouter{Group: assetRouter}
}
