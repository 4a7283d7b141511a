package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PizzaUpdate carries the fields to change; nil fields are left untouched
type PizzaUpdate struct {
	Name        *string
	Ingredients *string
}

// PizzaService provides methods to interact with the pizzas table
type PizzaService interface {
	// ListPizzas retrieves all pizzas without their association rows
	ListPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizza retrieves a pizza with its association rows and their restaurants
	GetPizza(ctx context.Context, id uint) (models.Pizza, error)
	// CreatePizza creates a new pizza in the database
	CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	// UpdatePizza updates an existing pizza; created_at is never rewritten
	UpdatePizza(ctx context.Context, id uint, update PizzaUpdate) (models.Pizza, error)
	// DeletePizza deletes a pizza and every row linking it to a restaurant
	DeletePizza(ctx context.Context, id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("failed to list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizza(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.WithContext(ctx).
		Preload("Restaurants", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Restaurants.Restaurant").
		First(&pizza, id).Error
	if err != nil {
		return models.Pizza{}, fmt.Errorf("failed to get pizza %d: %w", id, err)
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	pizza.ID = 0
	pizza.Restaurants = nil
	if err := s.db.WithContext(ctx).Create(&pizza).Error; err != nil {
		return models.Pizza{}, fmt.Errorf("failed to create pizza: %w", err)
	}
	log.WithFields(logrus.Fields{
		"pizza_id": pizza.ID,
		"name":     pizza.Name,
	}).Info("Pizza created")
	return pizza, nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, id uint, update PizzaUpdate) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		return models.Pizza{}, fmt.Errorf("failed to get pizza %d: %w", id, err)
	}

	if update.Name != nil {
		pizza.Name = *update.Name
	}
	if update.Ingredients != nil {
		pizza.Ingredients = *update.Ingredients
	}

	// updated_at is added by gorm even though it is not selected
	err := s.db.WithContext(ctx).Model(&pizza).Select("name", "ingredients").Updates(&pizza).Error
	if err != nil {
		return models.Pizza{}, fmt.Errorf("failed to update pizza %d: %w", id, err)
	}
	return s.GetPizza(ctx, id)
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		links := tx.Where("pizza_id = ?", id).Delete(&models.RestaurantPizza{})
		if links.Error != nil {
			return links.Error
		}

		result := tx.Delete(&models.Pizza{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		log.WithFields(logrus.Fields{
			"pizza_id":          id,
			"restaurant_pizzas": links.RowsAffected,
		}).Info("Pizza deleted")
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete pizza %d: %w", id, err)
	}
	return nil
}
