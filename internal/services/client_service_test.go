package services

import (
	"context"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateClient(t *testing.T) {
	db := setupTestDB(t)
	service := NewClientService(db)
	ctx := context.Background()

	client, secret, err := service.CreateClient(ctx, models.APIClient{Name: "Dashboard", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.NotEmpty(t, secret)

	stored, err := service.GetClientByID(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, stored.VerifyPassword(secret))
	assert.Equal(t, models.RoleAdmin, stored.Role)
}

func TestCreateClientDefaultsAndRoles(t *testing.T) {
	db := setupTestDB(t)
	service := NewClientService(db)
	ctx := context.Background()

	client, err := service.CreateClientWithSecret(ctx, models.APIClient{ID: "reader", Name: "Reader"}, "reader-secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, client.Role)

	_, err = service.CreateClientWithSecret(ctx, models.APIClient{Name: "Root", Role: "root"}, "x")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestListAndDeleteClients(t *testing.T) {
	db := setupTestDB(t)
	service := NewClientService(db)
	ctx := context.Background()

	client, _, err := service.CreateClient(ctx, models.APIClient{Name: "One"})
	require.NoError(t, err)

	clients, err := service.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)

	require.NoError(t, service.DeleteClient(ctx, client.ID))
	assert.ErrorIs(t, service.DeleteClient(ctx, client.ID), gorm.ErrRecordNotFound)

	_, err = service.GetClientByID(ctx, client.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletedClientIDCanBeReused(t *testing.T) {
	db := setupTestDB(t)
	service := NewClientService(db)
	ctx := context.Background()

	_, err := service.CreateClientWithSecret(ctx, models.APIClient{ID: "dev-client", Name: "Dev", Role: models.RoleAdmin}, "old-secret")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.OAuthToken{ClientID: "dev-client", AccessToken: "token-1", ExpiresAt: time.Now().Add(time.Hour)}).Error)

	require.NoError(t, service.DeleteClient(ctx, "dev-client"))

	var tokens int64
	require.NoError(t, db.Model(&models.OAuthToken{}).Where("client_id = ?", "dev-client").Count(&tokens).Error)
	assert.Zero(t, tokens)

	client, err := service.CreateClientWithSecret(ctx, models.APIClient{ID: "dev-client", Name: "Dev", Role: models.RoleUser}, "new-secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, client.Role)

	stored, err := service.GetClientByID(ctx, "dev-client")
	require.NoError(t, err)
	assert.True(t, stored.VerifyPassword("new-secret"))
}
