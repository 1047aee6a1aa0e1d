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
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/shared"
)

type projectService struct {
	projectRepository shared.ProjectRepository
}

func NewProjectService(projectRepository shared.ProjectRepository) *projectService {
	return &projectService{
		projectRepository: projectRepository,
	}
}

func (service *projectService) CreateProject(org models.Org, req dtos.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		Name:           req.Name,
		Slug:           slug.Make(req.Name),
		OrganizationID: org.ID,
		Description:    req.Description,
	}
	err := service.projectRepository.Create(nil, &project)
	return project, err
}

func (service *projectService) UpdateProject(project *models.Project, req dtos.PatchProjectRequest) error {
	if req.Name != nil {
		project.Name = *req.Name
		project.Slug = slug.Make(*req.Name)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	return service.projectRepository.Save(nil, project)
}
