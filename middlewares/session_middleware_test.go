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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type inMemoryPATRepository struct {
	pats map[string]models.PAT
}

func (repository *inMemoryPATRepository) GetByFingerprint(fingerprint string) (models.PAT, error) {
	pat, ok := repository.pats[fingerprint]
	if !ok {
		return models.PAT{}, gorm.ErrRecordNotFound
	}
	return pat, nil
}

func (repository *inMemoryPATRepository) Create(tx shared.DB, pat *models.PAT) error {
	repository.pats[pat.Fingerprint] = *pat
	return nil
}

func (repository *inMemoryPATRepository) DeleteByFingerprint(userID string, fingerprint string) error {
	delete(repository.pats, fingerprint)
	return nil
}

func (repository *inMemoryPATRepository) ListByUserID(userID string) ([]models.PAT, error) {
	var pats []models.PAT
	for _, pat := range repository.pats {
		if pat.UserID == userID {
			pats = append(pats, pat)
		}
	}
	return pats, nil
}

func newPATRepositoryWithToken(userID, token, scopes string) *inMemoryPATRepository {
	pat := models.PAT{UserID: userID, Scopes: scopes}
	pat.Token = pat.HashToken(token)
	pat.Fingerprint = pat.Token

	return &inMemoryPATRepository{pats: map[string]models.PAT{pat.Fingerprint: pat}}
}

func callSessionMiddleware(t *testing.T, repository shared.PersonalAccessTokenRepository, configure func(req *http.Request)) (shared.AuthSession, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	configure(req)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var session shared.AuthSession
	err := SessionMiddleware(repository)(func(ctx echo.Context) error {
		session = shared.GetSession(ctx)
		return nil
	})(ctx)
	return session, err
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("should resolve the session from the X-API-Key header", func(t *testing.T) {
		repository := newPATRepositoryWithToken("user-alice", "secret-token", "manage scan")

		session, err := callSessionMiddleware(t, repository, func(req *http.Request) {
			req.Header.Set("X-API-Key", "secret-token")
		})

		require.NoError(t, err)
		assert.Equal(t, "user-alice", session.GetUserID())
		assert.Equal(t, []string{"manage", "scan"}, session.GetScopes())
	})

	t.Run("should resolve the session from a bearer token", func(t *testing.T) {
		repository := newPATRepositoryWithToken("user-alice", "secret-token", "manage")

		session, err := callSessionMiddleware(t, repository, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer secret-token")
		})

		require.NoError(t, err)
		assert.Equal(t, "user-alice", session.GetUserID())
	})

	t.Run("should reject an unknown token", func(t *testing.T) {
		repository := newPATRepositoryWithToken("user-alice", "secret-token", "manage")

		_, err := callSessionMiddleware(t, repository, func(req *http.Request) {
			req.Header.Set("X-API-Key", "wrong-token")
		})

		var httpError *echo.HTTPError
		require.ErrorAs(t, err, &httpError)
		assert.Equal(t, 401, httpError.Code)
	})

	t.Run("should continue without a session when no token is sent", func(t *testing.T) {
		repository := newPATRepositoryWithToken("user-alice", "secret-token", "manage")

		session, err := callSessionMiddleware(t, repository, func(req *http.Request) {})

		require.NoError(t, err)
		assert.Empty(t, session.GetUserID())
	})
}

func TestSessionRequired(t *testing.T) {
	t.Run("should reject an anonymous request", func(t *testing.T) {
		repository := &inMemoryPATRepository{pats: map[string]models.PAT{}}

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		handler := SessionMiddleware(repository)(SessionRequired()(func(ctx echo.Context) error {
			return nil
		}))
		err := handler(ctx)

		var httpError *echo.HTTPError
		require.ErrorAs(t, err, &httpError)
		assert.Equal(t, 401, httpError.Code)
	})
}
