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

	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReadBySlug(t *testing.T) {
	t.Run("should scope the slug to the project", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetRepository(db)
		projectID := uuid.New()
		otherProjectID := uuid.New()
		created := createTestAsset(t, db, projectID, "banner")
		createTestAsset(t, db, otherProjectID, "banner")

		asset, err := repository.ReadBySlug(projectID, "banner")

		require.NoError(t, err)
		assert.Equal(t, created.ID, asset.ID)
		assert.Equal(t, projectID, asset.ProjectID)
	})

	t.Run("should return the not found error for an unknown slug", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetRepository(db)

		_, err := repository.ReadBySlug(uuid.New(), "does-not-exist")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestGetByOrgID(t *testing.T) {
	t.Run("should collect the assets across all projects of the org", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetRepository(db)
		orgID := uuid.New()

		projectA := models.Project{Name: "Website", Slug: "website", OrganizationID: orgID}
		projectB := models.Project{Name: "Print", Slug: "print", OrganizationID: orgID}
		foreign := models.Project{Name: "Other", Slug: "other", OrganizationID: uuid.New()}
		require.NoError(t, db.Create(&projectA).Error)
		require.NoError(t, db.Create(&projectB).Error)
		require.NoError(t, db.Create(&foreign).Error)

		createTestAsset(t, db, projectA.ID, "banner")
		createTestAsset(t, db, projectB.ID, "flyer")
		createTestAsset(t, db, foreign.ID, "poster")

		assets, err := repository.GetByOrgID(orgID)

		require.NoError(t, err)
		require.Len(t, assets, 2)
		slugs := []string{assets[0].Slug, assets[1].Slug}
		assert.ElementsMatch(t, []string{"banner", "flyer"}, slugs)
	})
}
