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

package router

import (
	"github.com/l3montree-dev/brandguard/controllers"
	"github.com/l3montree-dev/brandguard/middlewares"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/labstack/echo/v4"
)

type SessionRouter struct {
	*echo.Group
}

func whoami(ctx echo.Context) error {
	return ctx.JSON(200, map[string]string{
		"userID": shared.GetSession(ctx).GetUserID(),
	})
}

func NewSessionRouter(
	apiV1Router APIV1Router,
	patRepository shared.PersonalAccessTokenRepository,
	patController *controllers.PatController,
) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("",
		middlewares.SessionMiddleware(patRepository),
	)

	sessionRouter.GET("/whoami/", whoami, middlewares.SessionRequired())

	/**
	Personal access token router
	This does not happen in a org or anything.
	We only need to make sure, that the user is logged in.
	*/
	patRouter := sessionRouter.Group("/pats", middlewares.SessionRequired(), middlewares.NeededScope([]string{"manage"}))
	patRouter.GET("/", patController.List)
	patRouter.POST("/", patController.Create)
	patRouter.DELETE("/:fingerprint/", patController.Delete)

	return SessionRouter{
		Group: sessionRouter,
	}
}
