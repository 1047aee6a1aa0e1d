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
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/l3montree-dev/brandguard/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type TaskController struct {
	taskRepository shared.TaskRepository
}

func NewTaskController(taskRepository shared.TaskRepository) *TaskController {
	return &TaskController{
		taskRepository: taskRepository,
	}
}

func (c *TaskController) readTask(ctx shared.Context) (models.Task, error) {
	taskID, err := uuid.Parse(shared.SanitizeParam(ctx.Param("taskID")))
	if err != nil {
		return models.Task{}, echo.NewHTTPError(400, "invalid task id").WithInternal(err)
	}

	task, err := c.taskRepository.Read(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, echo.NewHTTPError(404, "task not found")
		}
		return models.Task{}, echo.NewHTTPError(500, "could not read task").WithInternal(err)
	}

	if task.ProjectID != shared.GetProject(ctx).ID {
		return models.Task{}, echo.NewHTTPError(404, "task not found")
	}
	return task, nil
}

func (c *TaskController) Create(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	var req dtos.CreateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   project.ID,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	}
	if err := c.taskRepository.Create(nil, &task); err != nil {
		return echo.NewHTTPError(500, "could not create task").WithInternal(err)
	}
	return ctx.JSON(201, taskToDTO(task))
}

func (c *TaskController) Read(ctx shared.Context) error {
	task, err := c.readTask(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(200, taskToDTO(task))
}

func (c *TaskController) List(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	tasks, err := c.taskRepository.GetByProjectID(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list tasks").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(tasks, taskToDTO))
}

func (c *TaskController) Update(ctx shared.Context) error {
	task, err := c.readTask(ctx)
	if err != nil {
		return err
	}

	var req dtos.PatchTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := c.taskRepository.Save(nil, &task); err != nil {
		return echo.NewHTTPError(500, "could not update task").WithInternal(err)
	}
	return ctx.JSON(200, taskToDTO(task))
}

func (c *TaskController) Delete(ctx shared.Context) error {
	task, err := c.readTask(ctx)
	if err != nil {
		return err
	}
	if err := c.taskRepository.Delete(nil, task.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete task").WithInternal(err)
	}
	return ctx.NoContent(204)
}
