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

package middlewares

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/labstack/echo/v4"
)

// all middlewares which modify the current request context and fetch some data from the database

// OrgMiddleware resolves the organization from the orgSlug parameter,
// attaches the domain scoped rbac and verifies the user is a member.
func OrgMiddleware(orgRepository shared.OrgRepository, rbacProvider shared.RBACProvider) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			orgSlug, err := shared.GetOrgSlug(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid organization slug")
			}

			org, err := orgRepository.ReadBySlug(orgSlug)
			if err != nil {
				return echo.NewHTTPError(404, "could not find organization")
			}

			rbac := rbacProvider.GetDomainRBAC(org.ID.String())

			session := shared.GetSession(ctx)
			allowed, err := rbac.HasAccess(session.GetUserID())
			if err != nil {
				return echo.NewHTTPError(500, "could not determine organization membership").WithInternal(err)
			}
			if !allowed {
				slog.Warn("access denied in OrgMiddleware", "user", session.GetUserID(), "organization", orgSlug)
				return echo.NewHTTPError(404, "could not find organization")
			}

			shared.SetOrg(ctx, org)
			shared.SetRBAC(ctx, rbac)
			return next(ctx)
		}
	}
}

// ProjectMiddleware resolves the project from the projectSlug parameter
// within the organization already on the context.
func ProjectMiddleware(projectRepository shared.ProjectRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			projectSlug, err := shared.GetProjectSlug(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid project slug")
			}

			project, err := projectRepository.ReadBySlug(shared.GetOrg(ctx).ID, projectSlug)
			if err != nil {
				return echo.NewHTTPError(404, "could not find project")
			}

			shared.SetProject(ctx, project)
			return next(ctx)
		}
	}
}

// AssetMiddleware resolves the asset from the assetSlug parameter
// within the project already on the context.
func AssetMiddleware(assetRepository shared.AssetRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			assetSlug, err := shared.GetAssetSlug(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid asset slug")
			}

			asset, err := assetRepository.ReadBySlug(shared.GetProject(ctx).ID, assetSlug)
			if err != nil {
				return echo.NewHTTPError(404, "could not find asset")
			}

			shared.SetAsset(ctx, asset)
			return next(ctx)
		}
	}
}

// AssetVersionMiddleware resolves the version from the versionID
// parameter and makes sure it belongs to the asset on the context.
func AssetVersionMiddleware(assetVersionRepository shared.AssetVersionRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			versionID, err := uuid.Parse(shared.SanitizeParam(ctx.Param("versionID")))
			if err != nil {
				return echo.NewHTTPError(400, "invalid version id")
			}

			version, err := assetVersionRepository.Read(versionID)
			if err != nil {
				return echo.NewHTTPError(404, "could not find asset version")
			}
			if version.AssetID != shared.GetAsset(ctx).ID {
				return echo.NewHTTPError(404, "could not find asset version")
			}

			shared.SetAssetVersion(ctx, version)
			return next(ctx)
		}
	}
}
