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
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("should detect the postgres unique violation code", func(t *testing.T) {
		err := fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"})

		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("should detect the gorm duplicated key error", func(t *testing.T) {
		assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	})

	t.Run("should not match other database errors", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
		assert.False(t, IsUniqueViolation(fmt.Errorf("connection refused")))
		assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))
	})
}

func TestTransaction(t *testing.T) {
	t.Run("should roll back everything when the callback fails", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetRepository(db)

		var createdID uuid.UUID
		err := repository.Transaction(func(tx *gorm.DB) error {
			asset := createTestAsset(t, tx, uuid.New(), "banner")
			createdID = asset.ID
			return fmt.Errorf("boom")
		})

		assert.Error(t, err)
		_, readErr := repository.Read(createdID)
		assert.ErrorIs(t, readErr, gorm.ErrRecordNotFound)
	})
}
