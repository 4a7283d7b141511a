package models

import (
	"time"
)

// Pizza represents a pizza recipe that restaurants can put on their menu
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`

	// Both timestamps are assigned by gorm when the row is written
	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Restaurants []RestaurantPizza `gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// NewPizza builds a pizza. Pizzas carry no validated attributes.
func NewPizza(name, ingredients string) *Pizza {
	return &Pizza{Name: name, Ingredients: ingredients}
}
