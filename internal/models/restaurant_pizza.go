package models

import (
	"time"

	"gorm.io/gorm"
)

// RestaurantPizza records that a restaurant sells a pizza, and at which price
type RestaurantPizza struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Price        int    `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30" json:"price"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      uint   `gorm:"not null;index" json:"pizza_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Restaurant *Restaurant `json:"-"`
	Pizza      *Pizza      `json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// NewRestaurantPizza builds an association row after validating name and price.
// Foreign keys are checked by the storage layer when the row is written.
func NewRestaurantPizza(name string, price int, restaurantID, pizzaID uint) (*RestaurantPizza, error) {
	rp := &RestaurantPizza{RestaurantID: restaurantID, PizzaID: pizzaID}
	if err := rp.SetName(name); err != nil {
		return nil, err
	}
	if err := rp.SetPrice(price); err != nil {
		return nil, err
	}
	return rp, nil
}

// SetPrice validates and assigns the price, keeping the old one on failure
func (rp *RestaurantPizza) SetPrice(price int) error {
	valid, err := ValidatePrice(price)
	if err != nil {
		return err
	}
	rp.Price = valid
	return nil
}

func (rp *RestaurantPizza) SetName(name string) error {
	valid, err := ValidateRestaurantPizzaName(name)
	if err != nil {
		return err
	}
	rp.Name = valid
	return nil
}

// BeforeSave runs the same checks as the setters on every write
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	if _, err := ValidatePrice(rp.Price); err != nil {
		return err
	}
	_, err := ValidateRestaurantPizzaName(rp.Name)
	return err
}
