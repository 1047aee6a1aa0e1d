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

	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/l3montree-dev/brandguard/utils"
	"github.com/labstack/echo/v4"
)

type OrgController struct {
	orgRepository shared.OrgRepository
	orgService    shared.OrgService
	rbacProvider  shared.RBACProvider
}

func NewOrgController(orgRepository shared.OrgRepository, orgService shared.OrgService, rbacProvider shared.RBACProvider) *OrgController {
	return &OrgController{
		orgRepository: orgRepository,
		orgService:    orgService,
		rbacProvider:  rbacProvider,
	}
}

func (c *OrgController) Create(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	var req dtos.CreateOrgRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	org, err := c.orgService.CreateOrg(req, session.GetUserID())
	if err != nil {
		return echo.NewHTTPError(500, "could not create organization").WithInternal(err)
	}
	return ctx.JSON(201, orgToDTO(org))
}

func (c *OrgController) Read(ctx shared.Context) error {
	org := shared.GetOrg(ctx)
	return ctx.JSON(200, orgToDTO(org))
}

func (c *OrgController) List(ctx shared.Context) error {
	session := shared.GetSession(ctx)
	domains, err := c.rbacProvider.DomainsOfUser(session.GetUserID())
	if err != nil {
		return echo.NewHTTPError(500, "could not list organizations").WithInternal(err)
	}

	orgs := make([]dtos.OrgDTO, 0, len(domains))
	for _, domain := range domains {
		orgID, err := uuid.Parse(domain)
		if err != nil {
			continue
		}
		org, err := c.orgRepository.Read(orgID)
		if err != nil {
			continue
		}
		orgs = append(orgs, orgToDTO(org))
	}
	return ctx.JSON(200, orgs)
}

func (c *OrgController) Update(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.PatchOrgRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := c.orgService.UpdateOrg(&org, req); err != nil {
		return echo.NewHTTPError(500, "could not update organization").WithInternal(err)
	}
	return ctx.JSON(200, orgToDTO(org))
}

func (c *OrgController) Delete(ctx shared.Context) error {
	org := shared.GetOrg(ctx)
	if err := c.orgRepository.Delete(nil, org.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete organization").WithInternal(err)
	}
	return ctx.NoContent(204)
}

func (c *OrgController) Members(ctx shared.Context) error {
	rbac := shared.GetRBAC(ctx)
	members, err := rbac.GetAllMembersOfOrganization()
	if err != nil {
		return echo.NewHTTPError(500, "could not list members").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(members, func(member string) map[string]string {
		return map[string]string{"userId": member}
	}))
}
