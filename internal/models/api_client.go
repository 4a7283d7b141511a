package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Roles an API client can hold
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// APIClient is a machine client allowed to request access tokens with the
// client_credentials grant. Secret holds a bcrypt hash, never the plain value.
type APIClient struct {
	ID        string    `gorm:"primaryKey" json:"client_id"`
	Secret    string    `gorm:"not null" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Domain    string    `json:"domain"`
	Role      string    `gorm:"not null;default:'user'" json:"role"`
	Scopes    string    `json:"scopes"` // Space-separated list of allowed scopes
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (APIClient) TableName() string {
	return "api_clients"
}

// HashSecret replaces the plain secret with its bcrypt hash
func (c *APIClient) HashSecret(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.Secret = string(hash)
	return nil
}

// The methods below satisfy oauth2.ClientInfo and oauth2.ClientPasswordVerifier

func (c *APIClient) GetID() string     { return c.ID }
func (c *APIClient) GetSecret() string { return c.Secret }
func (c *APIClient) GetDomain() string { return c.Domain }
func (c *APIClient) IsPublic() bool    { return false }

// GetUserID returns the client id: tokens are issued to the client itself
func (c *APIClient) GetUserID() string { return c.ID }

// VerifyPassword compares a plain secret against the stored hash
func (c *APIClient) VerifyPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(plain)) == nil
}
