package models

import (
	"gorm.io/gorm"
)

// Restaurant is a place selling pizzas. Name is unique across all restaurants.
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Address string `json:"address"`

	// Pizzas holds the association rows, not the pizzas themselves
	Pizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// NewRestaurant builds a restaurant after validating its name
func NewRestaurant(name, address string) (*Restaurant, error) {
	r := &Restaurant{Address: address}
	if err := r.SetName(name); err != nil {
		return nil, err
	}
	return r, nil
}

// SetName validates and assigns the restaurant name.
// The previous name is kept when validation fails.
func (r *Restaurant) SetName(name string) error {
	valid, err := ValidateRestaurantName(name)
	if err != nil {
		return err
	}
	r.Name = valid
	return nil
}

// SetAddress assigns the address. Any value is accepted.
func (r *Restaurant) SetAddress(address string) {
	r.Address = address
}

// BeforeSave re-checks the name on every create and update issued through gorm,
// so rows built without the setters cannot bypass validation.
func (r *Restaurant) BeforeSave(tx *gorm.DB) error {
	_, err := ValidateRestaurantName(r.Name)
	return err
}
