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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTransition(t *testing.T, db shared.DB, assetID uuid.UUID, method dtos.TransitionMethod, createdAt time.Time) models.AssetStateTransition {
	t.Helper()

	transition := models.NewAssetTransition(assetID, dtos.AssetStatusNotSubmitted, dtos.AssetStatusPendingReview, method, nil)
	transition.CreatedAt = createdAt
	require.NoError(t, db.Create(&transition).Error)
	return transition
}

func TestGetByAssetID(t *testing.T) {
	t.Run("should return the transitions oldest first", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetTransitionRepository(db)
		assetID := uuid.New()
		now := time.Now()

		// insert out of order on purpose
		createTestTransition(t, db, assetID, dtos.TransitionStartReview, now.Add(time.Minute))
		createTestTransition(t, db, assetID, dtos.TransitionSubmit, now)
		createTestTransition(t, db, assetID, dtos.TransitionApprove, now.Add(2*time.Minute))

		transitions, err := repository.GetByAssetID(assetID)

		require.NoError(t, err)
		require.Len(t, transitions, 3)
		assert.Equal(t, dtos.TransitionSubmit, transitions[0].TransitionMethod)
		assert.Equal(t, dtos.TransitionStartReview, transitions[1].TransitionMethod)
		assert.Equal(t, dtos.TransitionApprove, transitions[2].TransitionMethod)
	})

	t.Run("should not leak transitions of other assets", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetTransitionRepository(db)
		assetID := uuid.New()
		createTestTransition(t, db, uuid.New(), dtos.TransitionSubmit, time.Now())

		transitions, err := repository.GetByAssetID(assetID)

		require.NoError(t, err)
		assert.Empty(t, transitions)
	})
}

func TestGetByAssetIDPaged(t *testing.T) {
	t.Run("should page through the audit stream without losing rows", func(t *testing.T) {
		db := newTestDB(t)
		repository := NewAssetTransitionRepository(db)
		assetID := uuid.New()
		now := time.Now()

		methods := []dtos.TransitionMethod{
			dtos.TransitionSubmit,
			dtos.TransitionStartReview,
			dtos.TransitionReject,
			dtos.TransitionAcknowledgeRejection,
			dtos.TransitionSubmit,
		}
		for i, method := range methods {
			createTestTransition(t, db, assetID, method, now.Add(time.Duration(i)*time.Second))
		}

		firstPage, err := repository.GetByAssetIDPaged(shared.PageInfo{Page: 1, PageSize: 2}, assetID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), firstPage.Total)
		require.Len(t, firstPage.Data, 2)
		assert.Equal(t, dtos.TransitionSubmit, firstPage.Data[0].TransitionMethod)
		assert.Equal(t, dtos.TransitionStartReview, firstPage.Data[1].TransitionMethod)

		lastPage, err := repository.GetByAssetIDPaged(shared.PageInfo{Page: 3, PageSize: 2}, assetID)
		require.NoError(t, err)
		require.Len(t, lastPage.Data, 1)
		assert.Equal(t, dtos.TransitionSubmit, lastPage.Data[0].TransitionMethod)
	})
}
