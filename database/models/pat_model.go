package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

type PAT struct {
	CreatedAt   time.Time `json:"createdAt"`
	UserID      string    `json:"userId" gorm:"type:text;not null;"`
	Token       string    `json:"-" gorm:"primarykey;type:text;"`
	Fingerprint string    `json:"fingerprint" gorm:"type:text;"`
	Description string    `json:"description" gorm:"type:text"`
	Scopes      string    `json:"scopes" gorm:"type:text"`
}

func (p PAT) TableName() string {
	return "pats"
}

func (p PAT) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func (p PAT) GetUserID() string {
	return p.UserID
}
