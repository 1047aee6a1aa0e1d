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

type ProjectController struct {
	projectRepository shared.ProjectRepository
	projectService    shared.ProjectService
}

func NewProjectController(projectRepository shared.ProjectRepository, projectService shared.ProjectService) *ProjectController {
	return &ProjectController{
		projectRepository: projectRepository,
		projectService:    projectService,
	}
}

func (c *ProjectController) Create(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.CreateProjectRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project, err := c.projectService.CreateProject(org, req)
	if err != nil {
		return echo.NewHTTPError(500, "could not create project").WithInternal(err)
	}
	return ctx.JSON(201, projectToDTO(project))
}

func (c *ProjectController) Read(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	return ctx.JSON(200, projectToDTO(project))
}

func (c *ProjectController) List(ctx shared.Context) error {
	org := shared.GetOrg(ctx)
	projects, err := c.projectRepository.GetByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(projects, projectToDTO))
}

func (c *ProjectController) Update(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	var req dtos.PatchProjectRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := c.projectService.UpdateProject(&project, req); err != nil {
		return echo.NewHTTPError(500, "could not update project").WithInternal(err)
	}
	return ctx.JSON(200, projectToDTO(project))
}

func (c *ProjectController) Delete(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	if err := c.projectRepository.Delete(nil, project.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete project").WithInternal(err)
	}
	return ctx.NoContent(204)
}
