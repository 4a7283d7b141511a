package models

import (
	"time"
)

// OAuthToken persists issued access tokens so they can be looked up or revoked
type OAuthToken struct {
	ID          uint   `gorm:"primaryKey"`
	ClientID    string `gorm:"not null;index"`
	AccessToken string `gorm:"uniqueIndex;not null"`
	Scopes      string
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}
