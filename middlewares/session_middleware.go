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

package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/l3montree-dev/brandguard/accesscontrol"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func tokenFromRequest(ctx echo.Context) string {
	if header := ctx.Request().Header.Get("X-API-Key"); header != "" {
		return header
	}
	authorization := ctx.Request().Header.Get("Authorization")
	if strings.HasPrefix(authorization, "Bearer ") {
		return strings.TrimPrefix(authorization, "Bearer ")
	}
	return ""
}

// SessionMiddleware authenticates requests by personal access token.
// Requests without a token continue with NoSession, the access control
// middlewares reject them later if the resource is not public.
func SessionMiddleware(patRepository shared.PersonalAccessTokenRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := tokenFromRequest(ctx)
			if token == "" {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			hash := sha256.Sum256([]byte(token))
			fingerprint := hex.EncodeToString(hash[:])

			pat, err := patRepository.GetByFingerprint(fingerprint)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(401, "token provided but not found in database").WithInternal(err)
				}
				return echo.NewHTTPError(500, "unexpected error").WithInternal(err)
			}

			shared.SetSession(ctx, accesscontrol.NewSession(pat.GetUserID(), strings.Fields(pat.Scopes)))
			return next(ctx)
		}
	}
}

// SessionRequired rejects requests which did not authenticate at all.
func SessionRequired() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			if shared.GetSession(ctx).GetUserID() == "" {
				return echo.NewHTTPError(401, "unauthenticated")
			}
			return next(ctx)
		}
	}
}
