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
package shared

import (
	"fmt"
	"strconv"

	"github.com/l3montree-dev/brandguard/database/models"
)

type AuthSession interface {
	GetUserID() string
	GetScopes() []string
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func SetRBAC(ctx Context, rbac AccessControl) {
	ctx.Set("rbac", rbac)
}

func GetRBAC(ctx Context) AccessControl {
	return ctx.Get("rbac").(AccessControl)
}

func SetOrg(ctx Context, org models.Org) {
	ctx.Set("organization", org)
}

func GetOrg(ctx Context) models.Org {
	return ctx.Get("organization").(models.Org)
}

func HasOrganization(ctx Context) bool {
	_, ok := ctx.Get("organization").(models.Org)
	return ok
}

func SetProject(ctx Context, project models.Project) {
	ctx.Set("project", project)
}

func GetProject(ctx Context) models.Project {
	return ctx.Get("project").(models.Project)
}

func HasProject(ctx Context) bool {
	_, ok := ctx.Get("project").(models.Project)
	return ok
}

func SetAsset(ctx Context, asset models.Asset) {
	ctx.Set("asset", asset)
}

func GetAsset(ctx Context) models.Asset {
	return ctx.Get("asset").(models.Asset)
}

func SetAssetVersion(ctx Context, assetVersion models.AssetVersion) {
	ctx.Set("assetVersion", assetVersion)
}

func GetAssetVersion(ctx Context) models.AssetVersion {
	return ctx.Get("assetVersion").(models.AssetVersion)
}

func MaybeGetAssetVersion(ctx Context) (models.AssetVersion, error) {
	assetVersion, ok := ctx.Get("assetVersion").(models.AssetVersion)
	if !ok {
		return models.AssetVersion{}, fmt.Errorf("could not get asset version")
	}
	return assetVersion, nil
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return v
}

func GetOrgSlug(ctx Context) (string, error) {
	orgSlug := GetParam(ctx, "orgSlug")
	if orgSlug == "" {
		return "", fmt.Errorf("could not get org slug")
	}
	return orgSlug, nil
}

func GetProjectSlug(ctx Context) (string, error) {
	projectSlug := GetParam(ctx, "projectSlug")
	if projectSlug == "" {
		return "", fmt.Errorf("could not get project slug")
	}
	return projectSlug, nil
}

func GetAssetSlug(ctx Context) (string, error) {
	assetSlug := GetParam(ctx, "assetSlug")
	if assetSlug == "" {
		return "", fmt.Errorf("could not get asset slug")
	}
	return assetSlug, nil
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}
