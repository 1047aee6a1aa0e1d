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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/shared"
)

type projectRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.Project]
}

func NewProjectRepository(db shared.DB) *projectRepository {
	return &projectRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (repository *projectRepository) ReadBySlug(organizationID uuid.UUID, slug string) (models.Project, error) {
	var project models.Project
	err := repository.db.Where("slug = ? AND organization_id = ?", slug, organizationID).First(&project).Error
	return project, err
}

func (repository *projectRepository) GetByOrgID(organizationID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := repository.db.Where("organization_id = ?", organizationID).Order("created_at ASC").Find(&projects).Error
	return projects, err
}
