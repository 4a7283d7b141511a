package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantUpdate carries the fields to change; nil fields are left untouched
type RestaurantUpdate struct {
	Name    *string
	Address *string
}

// RestaurantService provides methods to interact with the restaurants table
type RestaurantService interface {
	// ListRestaurants retrieves all restaurants without their association rows
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurant retrieves a restaurant with its association rows and their pizzas
	GetRestaurant(ctx context.Context, id uint) (models.Restaurant, error)
	// CreateRestaurant inserts a restaurant; duplicate names fail in the storage layer
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	// UpdateRestaurant applies the update through the validating setters
	UpdateRestaurant(ctx context.Context, id uint, update RestaurantUpdate) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and every row linking it to a pizza
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurant(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("Pizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Pizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	restaurant.ID = 0
	restaurant.Pizzas = nil
	if err := s.db.WithContext(ctx).Create(&restaurant).Error; err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to create restaurant: %w", err)
	}
	log.WithFields(logrus.Fields{
		"restaurant_id": restaurant.ID,
		"name":          restaurant.Name,
	}).Info("Restaurant created")
	return restaurant, nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, id uint, update RestaurantUpdate) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to get restaurant %d: %w", id, err)
	}

	if update.Name != nil {
		if err := restaurant.SetName(*update.Name); err != nil {
			return models.Restaurant{}, err
		}
	}
	if update.Address != nil {
		restaurant.SetAddress(*update.Address)
	}

	err := s.db.WithContext(ctx).Model(&restaurant).Select("name", "address").Updates(&restaurant).Error
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to update restaurant %d: %w", id, err)
	}
	return s.GetRestaurant(ctx, id)
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		links := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{})
		if links.Error != nil {
			return links.Error
		}

		result := tx.Delete(&models.Restaurant{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		log.WithFields(logrus.Fields{
			"restaurant_id":     id,
			"restaurant_pizzas": links.RowsAffected,
		}).Info("Restaurant deleted")
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete restaurant %d: %w", id, err)
	}
	return nil
}
