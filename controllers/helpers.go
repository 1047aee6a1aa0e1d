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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"errors"

	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/statemachine"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// transitionHTTPError maps the workflow sentinel errors onto http status
// codes. Guard failures are conflicts, not bad requests: the request was
// well formed, the entity state refused it.
func transitionHTTPError(msg string, err error) *echo.HTTPError {
	switch {
	case errors.Is(err, statemachine.ErrInvalidTransition),
		errors.Is(err, statemachine.ErrFinalizeNotAllowed),
		errors.Is(err, statemachine.ErrCannotDeleteFinalized),
		errors.Is(err, statemachine.ErrCannotUpdateFinalized),
		errors.Is(err, statemachine.ErrDraftAlreadyExists),
		errors.Is(err, statemachine.ErrAssetNotReady),
		errors.Is(err, statemachine.ErrFileUnchanged),
		errors.Is(err, statemachine.ErrDuplicateVersionNumber):
		return echo.NewHTTPError(409, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(404, msg)
	}
	return echo.NewHTTPError(500, msg).WithInternal(err)
}

func assetToDTO(asset models.Asset) dtos.AssetDTO {
	return dtos.AssetDTO{
		ID:          asset.ID,
		Name:        asset.Name,
		Slug:        asset.Slug,
		Description: asset.Description,
		ProjectID:   asset.ProjectID,
		TaskID:      asset.TaskID,
		Status:      asset.Status,
		Metadata:    asset.Metadata,
		CreatedAt:   asset.CreatedAt,
		UpdatedAt:   asset.UpdatedAt,
	}
}

func assetVersionToDTO(version models.AssetVersion) dtos.AssetVersionDTO {
	return dtos.AssetVersionDTO{
		ID:            version.ID,
		AssetID:       version.AssetID,
		VersionNumber: version.VersionNumber,
		FileName:      version.FileName,
		SizeBytes:     version.SizeBytes,
		Checksum:      version.Checksum,
		VersionStatus: version.VersionStatus,
		ScanStatus:    version.ScanStatus,
		UploadedBy:    version.UploadedBy,
		CreatedAt:     version.CreatedAt,
		UpdatedAt:     version.UpdatedAt,
	}
}

func assetTransitionToDTO(transition models.AssetStateTransition) dtos.TransitionDTO {
	return dtos.TransitionDTO{
		ID:               transition.ID,
		FromState:        string(transition.FromState),
		ToState:          string(transition.ToState),
		TransitionMethod: transition.TransitionMethod,
		TriggeredBy:      transition.TriggeredBy,
		Metadata:         transition.GetArbitraryJSONData(),
		CreatedAt:        transition.CreatedAt,
	}
}

func assetVersionTransitionToDTO(transition models.AssetVersionStateTransition) dtos.TransitionDTO {
	return dtos.TransitionDTO{
		ID:               transition.ID,
		FromState:        transition.FromState,
		ToState:          transition.ToState,
		TransitionMethod: transition.TransitionMethod,
		TriggeredBy:      transition.TriggeredBy,
		Metadata:         transition.GetArbitraryJSONData(),
		CreatedAt:        transition.CreatedAt,
	}
}

func orgToDTO(org models.Org) dtos.OrgDTO {
	return dtos.OrgDTO{
		ID:          org.ID,
		Name:        org.Name,
		Slug:        org.Slug,
		Description: org.Description,
		CreatedAt:   org.CreatedAt,
	}
}

func projectToDTO(project models.Project) dtos.ProjectDTO {
	return dtos.ProjectDTO{
		ID:             project.ID,
		Name:           project.Name,
		Slug:           project.Slug,
		Description:    project.Description,
		OrganizationID: project.OrganizationID,
		CreatedAt:      project.CreatedAt,
	}
}

func taskToDTO(task models.Task) dtos.TaskDTO {
	return dtos.TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		ProjectID:   task.ProjectID,
		AssigneeID:  task.AssigneeID,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
	}
}
