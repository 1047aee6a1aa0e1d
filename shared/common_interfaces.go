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

package shared

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/utils"
)

type OrgRepository interface {
	utils.Repository[uuid.UUID, models.Org, DB]
	ReadBySlug(slug string) (models.Org, error)
	All() ([]models.Org, error)
}

type ProjectRepository interface {
	utils.Repository[uuid.UUID, models.Project, DB]
	ReadBySlug(organizationID uuid.UUID, slug string) (models.Project, error)
	GetByOrgID(organizationID uuid.UUID) ([]models.Project, error)
}

type TaskRepository interface {
	utils.Repository[uuid.UUID, models.Task, DB]
	GetByProjectID(projectID uuid.UUID) ([]models.Task, error)
}

type AssetRepository interface {
	utils.Repository[uuid.UUID, models.Asset, DB]
	// ReadForUpdate loads the asset inside tx while holding a row lock on
	// dialects that support it.
	ReadForUpdate(tx DB, id uuid.UUID) (models.Asset, error)
	ReadBySlug(projectID uuid.UUID, slug string) (models.Asset, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Asset, error)
	GetByOrgID(organizationID uuid.UUID) ([]models.Asset, error)
}

type AssetVersionRepository interface {
	utils.Repository[uuid.UUID, models.AssetVersion, DB]
	ReadForUpdate(tx DB, id uuid.UUID) (models.AssetVersion, error)
	GetByAssetID(assetID uuid.UUID) ([]models.AssetVersion, error)
	// LatestVersion returns the non deleted version with the highest
	// version number, or nil if the asset has no versions.
	LatestVersion(tx DB, assetID uuid.UUID) (*models.AssetVersion, error)
	HasDraftVersion(tx DB, assetID uuid.UUID) (bool, error)
	NextVersionNumber(tx DB, assetID uuid.UUID) (int, error)
	VersionNumberExists(tx DB, assetID uuid.UUID, versionNumber int) (bool, error)
	SoftDelete(tx DB, id uuid.UUID) error
}

type AssetTransitionRepository interface {
	utils.Repository[uuid.UUID, models.AssetStateTransition, DB]
	GetByAssetID(assetID uuid.UUID) ([]models.AssetStateTransition, error)
	GetByAssetIDPaged(pageInfo PageInfo, assetID uuid.UUID) (Paged[models.AssetStateTransition], error)
}

type AssetVersionTransitionRepository interface {
	utils.Repository[uuid.UUID, models.AssetVersionStateTransition, DB]
	GetByAssetVersionID(assetVersionID uuid.UUID) ([]models.AssetVersionStateTransition, error)
	GetByAssetVersionIDPaged(pageInfo PageInfo, assetVersionID uuid.UUID) (Paged[models.AssetVersionStateTransition], error)
}

type PersonalAccessTokenRepository interface {
	GetByFingerprint(fingerprint string) (models.PAT, error)
	Create(tx DB, pat *models.PAT) error
	DeleteByFingerprint(userID string, fingerprint string) error
	ListByUserID(userID string) ([]models.PAT, error)
}

// WorkflowService owns every state transition of assets and asset
// versions. All mutations run inside a single transaction together with
// exactly one audit row.
type WorkflowService interface {
	SubmitAsset(assetID uuid.UUID, triggeredBy *string) (models.Asset, error)
	StartReview(assetID uuid.UUID, triggeredBy *string) (models.Asset, error)
	ApproveAsset(assetID uuid.UUID, triggeredBy *string) (models.Asset, error)
	RejectAsset(assetID uuid.UUID, triggeredBy *string, reason string) (models.Asset, error)
	AcknowledgeRejection(assetID uuid.UUID, triggeredBy *string, reason string) (models.Asset, error)
	ArchiveAsset(assetID uuid.UUID, triggeredBy *string) (models.Asset, error)

	FinalizeVersion(assetVersionID uuid.UUID, triggeredBy *string) (models.AssetVersion, error)
	StartScan(assetVersionID uuid.UUID, triggeredBy *string) (models.AssetVersion, error)
	MarkClean(assetVersionID uuid.UUID, triggeredBy *string) (models.AssetVersion, error)
	MarkInfected(assetVersionID uuid.UUID, triggeredBy *string, virusName string) (models.AssetVersion, error)
	MarkError(assetVersionID uuid.UUID, triggeredBy *string, errorMessage string) (models.AssetVersion, error)

	GetAvailableTransitions(assetID uuid.UUID) ([]dtos.TransitionMethod, error)
}

type AssetVersionService interface {
	CreateVersion(asset models.Asset, fileName string, content []byte, uploadedBy string) (models.AssetVersion, error)
	UpdateVersion(assetVersionID uuid.UUID, fileName string, content []byte, uploadedBy string) (models.AssetVersion, error)
	DeleteVersion(assetVersionID uuid.UUID) error
}

type AssetService interface {
	CreateAsset(project models.Project, req dtos.CreateAssetRequest, userID string) (models.Asset, error)
	UpdateAsset(asset *models.Asset, req dtos.PatchAssetRequest) error
	DeleteAsset(asset models.Asset) error
}

type OrgService interface {
	CreateOrg(req dtos.CreateOrgRequest, userID string) (models.Org, error)
	UpdateOrg(org *models.Org, req dtos.PatchOrgRequest) error
}

type ProjectService interface {
	CreateProject(org models.Org, req dtos.CreateProjectRequest) (models.Project, error)
	UpdateProject(project *models.Project, req dtos.PatchProjectRequest) error
}

// FileStore abstracts where uploaded asset files live.
type FileStore interface {
	Put(key string, content []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}

// Notifier is called after a transition was committed. Failures are
// logged, never propagated back to the caller.
type Notifier interface {
	NotifyAssetTransition(asset models.Asset, transition models.AssetStateTransition) error
}

type AccessControl interface {
	HasAccess(subject string) (bool, error)

	InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role) error

	GrantRole(subject string, role Role) error
	RevokeRole(subject string, role Role) error

	AllowRole(role Role, object Object, action []Action) error
	IsAllowed(subject string, object Object, action Action) (bool, error)

	GetAllRoles(user string) []string
	GetAllMembersOfOrganization() ([]string, error)
}

type RBACProvider interface {
	GetDomainRBAC(domain string) AccessControl
	DomainsOfUser(user string) ([]string, error)
}

type RBACMiddleware = func(obj Object, act Action) echo.MiddlewareFunc

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleGuest  Role = "guest"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionReview Action = "review"
)

type Object string

const (
	ObjectProject      Object = "project"
	ObjectAsset        Object = "asset"
	ObjectTask         Object = "task"
	ObjectUser         Object = "user"
	ObjectOrganization Object = "organization"
)
