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

type OrgRouter struct {
	*echo.Group
}

func NewOrgRouter(
	sessionGroup SessionRouter,
	orgController *controllers.OrgController,
	projectController *controllers.ProjectController,
	orgRepository shared.OrgRepository,
	rbacProvider shared.RBACProvider,
) OrgRouter {
	/**
	Organization router
	*/
	orgRouter := sessionGroup.Group.Group("/organizations", middlewares.SessionRequired())
	orgRouter.GET("/", orgController.List)
	orgRouter.POST("/", orgController.Create, middlewares.NeededScope([]string{"manage"}))

	/**
	Organization scoped router
	All routes below this line are scoped to a specific organization.
	*/
	organizationRouter := orgRouter.Group("/:orgSlug",
		middlewares.OrgMiddleware(orgRepository, rbacProvider),
		middlewares.AccessControl(shared.ObjectOrganization, shared.ActionRead))

	organizationRouter.GET("/", orgController.Read)
	organizationRouter.GET("/members/", orgController.Members)
	organizationRouter.GET("/projects/", projectController.List)

	organizationRouter.PATCH("/", orgController.Update, middlewares.NeededScope([]string{"manage"}), middlewares.AccessControl(shared.ObjectOrganization, shared.ActionUpdate))
	organizationRouter.DELETE("/", orgController.Delete, middlewares.NeededScope([]string{"manage"}), middlewares.AccessControl(shared.ObjectOrganization, shared.ActionDelete))
	organizationRouter.POST("/projects/", projectController.Create, middlewares.NeededScope([]string{"manage"}), middlewares.AccessControl(shared.ObjectProject, shared.ActionCreate))

	return OrgRouter{Group: organizationRouter}
}
