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
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/l3montree-dev/brandguard/utils"
	"github.com/labstack/echo/v4"
)

type PatController struct {
	patRepository shared.PersonalAccessTokenRepository
}

func NewPatController(patRepository shared.PersonalAccessTokenRepository) *PatController {
	return &PatController{
		patRepository: patRepository,
	}
}

func patToDTO(pat models.PAT) dtos.PatDTO {
	return dtos.PatDTO{
		Fingerprint: pat.Fingerprint,
		Description: pat.Description,
		Scopes:      pat.Scopes,
		CreatedAt:   pat.CreatedAt,
	}
}

func (p *PatController) Create(ctx shared.Context) error {
	session := shared.GetSession(ctx)
	userID := session.GetUserID()

	var req dtos.CreatePatRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return echo.NewHTTPError(500, "could not create personal access token").WithInternal(err)
	}
	token := hex.EncodeToString(tokenBytes)

	pat := models.PAT{
		UserID:      userID,
		Description: req.Description,
		Scopes:      req.Scopes,
	}
	// only the hash gets persisted, the plaintext token leaves once
	pat.Token = pat.HashToken(token)
	pat.Fingerprint = pat.Token

	if err := p.patRepository.Create(nil, &pat); err != nil {
		return echo.NewHTTPError(500, "could not create personal access token").WithInternal(err)
	}

	return ctx.JSON(200, dtos.PatWithTokenDTO{
		PatDTO: patToDTO(pat),
		Token:  token,
	})
}

func (p *PatController) List(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	pats, err := p.patRepository.ListByUserID(session.GetUserID())
	if err != nil {
		return echo.NewHTTPError(500, "could not list personal access tokens").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(pats, patToDTO))
}

func (p *PatController) Delete(ctx shared.Context) error {
	session := shared.GetSession(ctx)
	fingerprint := shared.SanitizeParam(ctx.Param("fingerprint"))

	if err := p.patRepository.DeleteByFingerprint(session.GetUserID(), fingerprint); err != nil {
		return echo.NewHTTPError(500, "could not revoke personal access token").WithInternal(err)
	}
	return ctx.NoContent(200)
}
