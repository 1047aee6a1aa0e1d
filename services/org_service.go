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

type orgService struct {
	orgRepository shared.OrgRepository
	rbacProvider  shared.RBACProvider
}

func NewOrgService(orgRepository shared.OrgRepository, rbacProvider shared.RBACProvider) *orgService {
	return &orgService{
		orgRepository: orgRepository,
		rbacProvider:  rbacProvider,
	}
}

func (service *orgService) CreateOrg(req dtos.CreateOrgRequest, userID string) (models.Org, error) {
	org := models.Org{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
	}
	if err := service.orgRepository.Create(nil, &org); err != nil {
		return models.Org{}, err
	}

	// the creating user owns the new org
	rbac := service.rbacProvider.GetDomainRBAC(org.ID.String())
	if err := shared.BootstrapOrg(rbac, userID, shared.RoleOwner); err != nil {
		return models.Org{}, err
	}
	return org, nil
}

func (service *orgService) UpdateOrg(org *models.Org, req dtos.PatchOrgRequest) error {
	if req.Name != nil {
		org.Name = *req.Name
		org.Slug = slug.Make(*req.Name)
	}
	if req.Description != nil {
		org.Description = *req.Description
	}
	return service.orgRepository.Save(nil, org)
}
