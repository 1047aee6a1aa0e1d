package dtos

import "time"

type PatDTO struct {
	Fingerprint string    `json:"fingerprint"`
	Description string    `json:"description"`
	Scopes      string    `json:"scopes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PatWithTokenDTO is only returned on creation. The plaintext token is
// never stored and cannot be retrieved again.
type PatWithTokenDTO struct {
	PatDTO
	Token string `json:"token"`
}

type CreatePatRequest struct {
	Description string `json:"description" validate:"required"`
	Scopes      string `json:"scopes"`
}
