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
	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/shared"
)

type patRepository struct {
	db shared.DB
}

func NewPATRepository(db shared.DB) *patRepository {
	return &patRepository{
		db: db,
	}
}

func (repository *patRepository) GetByFingerprint(fingerprint string) (models.PAT, error) {
	var pat models.PAT
	err := repository.db.Where("fingerprint = ?", fingerprint).First(&pat).Error
	return pat, err
}

func (repository *patRepository) Create(tx shared.DB, pat *models.PAT) error {
	db := repository.db
	if tx != nil {
		db = tx
	}
	return db.Create(pat).Error
}

func (repository *patRepository) DeleteByFingerprint(userID string, fingerprint string) error {
	return repository.db.Delete(&models.PAT{}, "user_id = ? AND fingerprint = ?", userID, fingerprint).Error
}

func (repository *patRepository) ListByUserID(userID string) ([]models.PAT, error) {
	var pats []models.PAT
	err := repository.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&pats).Error
	return pats, err
}
