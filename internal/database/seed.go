package database

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type seedRestaurant struct {
	name    string
	address string
}

type seedPizza struct {
	name        string
	ingredients string
}

type seedPrice struct {
	restaurant int
	pizza      int
	price      int
}

var (
	seedRestaurants = []seedRestaurant{
		{"Karen's Pizza Shack", "address1"},
		{"Sanjay's Pizza", "address2"},
		{"Kiki's Pizza", "address3"},
	}
	seedPizzas = []seedPizza{
		{"Emma", "Dough, Tomato Sauce, Cheese"},
		{"Geri", "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{"Melanie", "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}
	seedPrices = []seedPrice{
		{restaurant: 0, pizza: 0, price: 1},
		{restaurant: 1, pizza: 1, price: 4},
		{restaurant: 2, pizza: 2, price: 5},
	}
)

// Seed inserts the sample restaurants, pizzas and prices when the restaurants
// table is empty. It returns false when data was already present.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count restaurants: %w", err)
	}
	if count > 0 {
		log.WithField("restaurants", count).Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurants := make([]*models.Restaurant, 0, len(seedRestaurants))
		for _, s := range seedRestaurants {
			r, err := models.NewRestaurant(s.name, s.address)
			if err != nil {
				return err
			}
			if err := tx.Create(r).Error; err != nil {
				return err
			}
			restaurants = append(restaurants, r)
		}

		pizzas := make([]*models.Pizza, 0, len(seedPizzas))
		for _, s := range seedPizzas {
			p := models.NewPizza(s.name, s.ingredients)
			if err := tx.Create(p).Error; err != nil {
				return err
			}
			pizzas = append(pizzas, p)
		}

		for _, s := range seedPrices {
			r, p := restaurants[s.restaurant], pizzas[s.pizza]
			rp, err := models.NewRestaurantPizza(fmt.Sprintf("%s at %s", p.Name, r.Name), s.price, r.ID, p.ID)
			if err != nil {
				return err
			}
			if err := tx.Create(rp).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed database: %w", err)
	}

	log.WithFields(logrus.Fields{
		"restaurants":       len(seedRestaurants),
		"pizzas":            len(seedPizzas),
		"restaurant_pizzas": len(seedPrices),
	}).Info("Database seeded successfully")
	return true, nil
}
