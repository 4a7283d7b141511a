package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrInvalidRole is returned when a client is created with an unknown role
var ErrInvalidRole = errors.New("invalid role: allowed roles are admin, user")

// ClientService manages the API clients allowed to request access tokens
type ClientService interface {
	// CreateClient stores a new client and returns it with its plain secret.
	// The plain secret is not recoverable afterwards.
	CreateClient(ctx context.Context, client models.APIClient) (models.APIClient, string, error)
	// CreateClientWithSecret stores a client using a caller-chosen secret
	CreateClientWithSecret(ctx context.Context, client models.APIClient, secret string) (models.APIClient, error)
	ListClients(ctx context.Context) ([]models.APIClient, error)
	GetClientByID(ctx context.Context, id string) (models.APIClient, error)
	DeleteClient(ctx context.Context, id string) error
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(ctx context.Context, client models.APIClient) (models.APIClient, string, error) {
	secret := uuid.New().String()
	created, err := s.CreateClientWithSecret(ctx, client, secret)
	if err != nil {
		return models.APIClient{}, "", err
	}
	return created, secret, nil
}

func (s *clientService) CreateClientWithSecret(ctx context.Context, client models.APIClient, secret string) (models.APIClient, error) {
	if client.Role == "" {
		client.Role = models.RoleUser
	}
	if client.Role != models.RoleAdmin && client.Role != models.RoleUser {
		return models.APIClient{}, ErrInvalidRole
	}
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if err := client.HashSecret(secret); err != nil {
		return models.APIClient{}, fmt.Errorf("failed to hash client secret: %w", err)
	}
	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return models.APIClient{}, fmt.Errorf("failed to create client: %w", err)
	}
	log.WithField("client_id", client.ID).Info("API client created")
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]models.APIClient, error) {
	var clients []models.APIClient
	if err := s.db.WithContext(ctx).Order("created_at").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) GetClientByID(ctx context.Context, id string) (models.APIClient, error) {
	var client models.APIClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		return models.APIClient{}, fmt.Errorf("failed to get client %s: %w", id, err)
	}
	return client, nil
}

// DeleteClient removes the client row and the tokens recorded for it, so the
// id can be registered again
func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tokens := tx.Where("client_id = ?", id).Delete(&models.OAuthToken{})
		if tokens.Error != nil {
			return tokens.Error
		}

		result := tx.Where("id = ?", id).Delete(&models.APIClient{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		log.WithFields(logrus.Fields{
			"client_id": id,
			"tokens":    tokens.RowsAffected,
		}).Info("API client deleted")
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", id, err)
	}
	return nil
}
