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

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	orgGroup OrgRouter,
	projectController *controllers.ProjectController,
	taskController *controllers.TaskController,
	assetController *controllers.AssetController,
	projectRepository shared.ProjectRepository,
) ProjectRouter {
	/**
	Project scoped router
	All routes below this line are scoped to a specific project.
	*/
	projectRouter := orgGroup.Group.Group("/projects/:projectSlug",
		middlewares.ProjectMiddleware(projectRepository),
		middlewares.AccessControl(shared.ObjectProject, shared.ActionRead))

	projectRouter.GET("/", projectController.Read)
	projectRouter.PATCH("/", projectController.Update, middlewares.NeededScope([]string{"manage"}), middlewares.AccessControl(shared.ObjectProject, shared.ActionUpdate))
	projectRouter.DELETE("/", projectController.Delete, middlewares.NeededScope([]string{"manage"}), middlewares.AccessControl(shared.ObjectProject, shared.ActionDelete))

	taskRouter := projectRouter.Group("/tasks", middlewares.AccessControl(shared.ObjectTask, shared.ActionRead))
	taskRouter.GET("/", taskController.List)
	taskRouter.GET("/:taskID/", taskController.Read)
	taskRouter.POST("/", taskController.Create, middlewares.AccessControl(shared.ObjectTask, shared.ActionCreate))
	taskRouter.PATCH("/:taskID/", taskController.Update, middlewares.AccessControl(shared.ObjectTask, shared.ActionUpdate))
	taskRouter.DELETE("/:taskID/", taskController.Delete, middlewares.AccessControl(shared.ObjectTask, shared.ActionDelete))

	projectRouter.GET("/assets/", assetController.List, middlewares.AccessControl(shared.ObjectAsset, shared.ActionRead))
	projectRouter.POST("/assets/", assetController.Create, middlewares.AccessControl(shared.ObjectAsset, shared.ActionCreate))

	return ProjectRouter{Group: projectRouter}
}
