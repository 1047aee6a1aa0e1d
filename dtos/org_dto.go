package dtos

import (
	"time"

	"github.com/google/uuid"
)

type OrgDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateOrgRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type PatchOrgRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
