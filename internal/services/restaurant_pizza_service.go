package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantPizzaUpdate carries the fields to change; nil fields are left untouched
type RestaurantPizzaUpdate struct {
	Name  *string
	Price *int
}

// RestaurantPizzaService manages the rows linking restaurants to pizzas
type RestaurantPizzaService interface {
	// GetRestaurantPizza retrieves a row with its restaurant and pizza loaded
	GetRestaurantPizza(ctx context.Context, id uint) (models.RestaurantPizza, error)
	// CreateRestaurantPizza records that a restaurant sells a pizza.
	// Dangling foreign keys are rejected by the storage layer.
	CreateRestaurantPizza(ctx context.Context, rp models.RestaurantPizza) (models.RestaurantPizza, error)
	// UpdateRestaurantPizza changes the name or price of a row
	UpdateRestaurantPizza(ctx context.Context, id uint, update RestaurantPizzaUpdate) (models.RestaurantPizza, error)
	// DeleteRestaurantPizza removes the pairing
	DeleteRestaurantPizza(ctx context.Context, id uint) error
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) GetRestaurantPizza(ctx context.Context, id uint) (models.RestaurantPizza, error) {
	var rp models.RestaurantPizza
	err := s.db.WithContext(ctx).
		Preload("Restaurant").
		Preload("Pizza").
		First(&rp, id).Error
	if err != nil {
		return models.RestaurantPizza{}, fmt.Errorf("failed to get restaurant pizza %d: %w", id, err)
	}
	return rp, nil
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, rp models.RestaurantPizza) (models.RestaurantPizza, error) {
	rp.ID = 0
	// Only the foreign keys link the row; never upsert the parents from here
	rp.Restaurant = nil
	rp.Pizza = nil
	if err := s.db.WithContext(ctx).Create(&rp).Error; err != nil {
		return models.RestaurantPizza{}, fmt.Errorf("failed to create restaurant pizza: %w", err)
	}
	log.WithFields(logrus.Fields{
		"restaurant_pizza_id": rp.ID,
		"restaurant_id":       rp.RestaurantID,
		"pizza_id":            rp.PizzaID,
		"price":               rp.Price,
	}).Info("Restaurant pizza created")
	return s.GetRestaurantPizza(ctx, rp.ID)
}

func (s *restaurantPizzaService) UpdateRestaurantPizza(ctx context.Context, id uint, update RestaurantPizzaUpdate) (models.RestaurantPizza, error) {
	var rp models.RestaurantPizza
	if err := s.db.WithContext(ctx).First(&rp, id).Error; err != nil {
		return models.RestaurantPizza{}, fmt.Errorf("failed to get restaurant pizza %d: %w", id, err)
	}

	if update.Name != nil {
		if err := rp.SetName(*update.Name); err != nil {
			return models.RestaurantPizza{}, err
		}
	}
	if update.Price != nil {
		if err := rp.SetPrice(*update.Price); err != nil {
			return models.RestaurantPizza{}, err
		}
	}

	err := s.db.WithContext(ctx).Model(&rp).Select("name", "price").Updates(&rp).Error
	if err != nil {
		return models.RestaurantPizza{}, fmt.Errorf("failed to update restaurant pizza %d: %w", id, err)
	}
	return s.GetRestaurantPizza(ctx, id)
}

func (s *restaurantPizzaService) DeleteRestaurantPizza(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.RestaurantPizza{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete restaurant pizza %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete restaurant pizza %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
