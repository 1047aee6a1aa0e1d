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

package services

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/database/repositories"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/monitoring"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/l3montree-dev/brandguard/statemachine"
)

type assetVersionService struct {
	assetRepository        shared.AssetRepository
	assetVersionRepository shared.AssetVersionRepository
	fileStore              shared.FileStore
}

func NewAssetVersionService(assetRepository shared.AssetRepository, assetVersionRepository shared.AssetVersionRepository, fileStore shared.FileStore) *assetVersionService {
	return &assetVersionService{
		assetRepository:        assetRepository,
		assetVersionRepository: assetVersionRepository,
		fileStore:              fileStore,
	}
}

func checksum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// CreateVersion creates the next draft version for the asset. Files are
// stored content addressed under their checksum, the database only keeps
// the metadata.
func (service *assetVersionService) CreateVersion(asset models.Asset, fileName string, content []byte, uploadedBy string) (models.AssetVersion, error) {
	sum := checksum(content)
	if err := service.fileStore.Put(sum, content); err != nil {
		return models.AssetVersion{}, err
	}

	var version models.AssetVersion
	err := service.assetRepository.Transaction(func(tx shared.DB) error {
		// lock the asset so concurrent uploads serialize on it
		lockedAsset, err := service.assetRepository.ReadForUpdate(tx, asset.ID)
		if err != nil {
			return err
		}

		hasDraft, err := service.assetVersionRepository.HasDraftVersion(tx, lockedAsset.ID)
		if err != nil {
			return err
		}
		if err := statemachine.GuardCreateVersion(lockedAsset, hasDraft); err != nil {
			return err
		}

		versionNumber, err := service.assetVersionRepository.NextVersionNumber(tx, lockedAsset.ID)
		if err != nil {
			return err
		}
		exists, err := service.assetVersionRepository.VersionNumberExists(tx, lockedAsset.ID, versionNumber)
		if err != nil {
			return err
		}
		if exists {
			return statemachine.ErrDuplicateVersionNumber
		}

		version = models.AssetVersion{
			AssetID:       lockedAsset.ID,
			VersionNumber: versionNumber,
			FileName:      fileName,
			SizeBytes:     int64(len(content)),
			Checksum:      sum,
			StorageKey:    sum,
			VersionStatus: dtos.VersionStatusDraft,
			ScanStatus:    dtos.ScanStatusPending,
			UploadedBy:    uploadedBy,
		}
		if err := service.assetVersionRepository.Create(tx, &version); err != nil {
			if repositories.IsUniqueViolation(err) {
				return statemachine.ErrDuplicateVersionNumber
			}
			return err
		}
		return nil
	})
	if err != nil {
		return models.AssetVersion{}, err
	}

	monitoring.VersionUploadsTotal.Inc()
	return version, nil
}

// UpdateVersion replaces the file of a draft version. The scan result of
// the old file does not carry over, the version goes back to pending.
func (service *assetVersionService) UpdateVersion(assetVersionID uuid.UUID, fileName string, content []byte, uploadedBy string) (models.AssetVersion, error) {
	sum := checksum(content)

	var version models.AssetVersion
	err := service.assetVersionRepository.Transaction(func(tx shared.DB) error {
		var err error
		version, err = service.assetVersionRepository.ReadForUpdate(tx, assetVersionID)
		if err != nil {
			return err
		}

		if err := statemachine.GuardUpdate(version, sum); err != nil {
			return err
		}

		if err := service.fileStore.Put(sum, content); err != nil {
			return err
		}

		version.FileName = fileName
		version.SizeBytes = int64(len(content))
		version.Checksum = sum
		version.StorageKey = sum
		version.ScanStatus = dtos.ScanStatusPending
		version.UploadedBy = uploadedBy
		return service.assetVersionRepository.Save(tx, &version)
	})
	if err != nil {
		return models.AssetVersion{}, err
	}

	monitoring.VersionUploadsTotal.Inc()
	return version, nil
}

// DeleteVersion tombstones a draft version. The stored file stays, other
// versions may reference the same content.
func (service *assetVersionService) DeleteVersion(assetVersionID uuid.UUID) error {
	return service.assetVersionRepository.Transaction(func(tx shared.DB) error {
		version, err := service.assetVersionRepository.ReadForUpdate(tx, assetVersionID)
		if err != nil {
			return err
		}

		if err := statemachine.GuardDelete(version); err != nil {
			return err
		}

		return service.assetVersionRepository.SoftDelete(tx, version.ID)
	})
}
