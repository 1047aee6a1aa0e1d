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
	"testing"

	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestPAT(t *testing.T, repository *patRepository, userID, token string) models.PAT {
	t.Helper()

	pat := models.PAT{
		UserID:      userID,
		Description: "ci token",
		Scopes:      "manage scan",
	}
	pat.Token = pat.HashToken(token)
	pat.Fingerprint = pat.Token
	require.NoError(t, repository.Create(nil, &pat))
	return pat
}

func TestGetByFingerprint(t *testing.T) {
	t.Run("should find the token by the hash of its plaintext", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewPATRepository(db)
		created := createTestPAT(t, repository, "user-alice", "secret-token")

		pat, err := repository.GetByFingerprint(models.PAT{}.HashToken("secret-token"))

		require.NoError(t, err)
		assert.Equal(t, created.Fingerprint, pat.Fingerprint)
		assert.Equal(t, "user-alice", pat.GetUserID())
	})

	t.Run("should return the not found error for an unknown fingerprint", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewPATRepository(db)

		_, err := repository.GetByFingerprint("does-not-exist")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestDeleteByFingerprint(t *testing.T) {
	t.Run("should delete the own token", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewPATRepository(db)
		pat := createTestPAT(t, repository, "user-alice", "secret-token")

		require.NoError(t, repository.DeleteByFingerprint("user-alice", pat.Fingerprint))

		_, err := repository.GetByFingerprint(pat.Fingerprint)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("should not delete tokens of other users", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewPATRepository(db)
		pat := createTestPAT(t, repository, "user-alice", "secret-token")

		require.NoError(t, repository.DeleteByFingerprint("user-bob", pat.Fingerprint))

		_, err := repository.GetByFingerprint(pat.Fingerprint)
		assert.NoError(t, err)
	})
}

func TestListByUserID(t *testing.T) {
	t.Run("should only list the tokens of the user", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewPATRepository(db)
		createTestPAT(t, repository, "user-alice", "token-one")
		createTestPAT(t, repository, "user-alice", "token-two")
		createTestPAT(t, repository, "user-bob", "token-three")

		pats, err := repository.ListByUserID("user-alice")

		require.NoError(t, err)
		assert.Len(t, pats, 2)
	})
}
