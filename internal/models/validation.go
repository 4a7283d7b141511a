package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field limits shared by the validators and the column definitions
const (
	MaxRestaurantNameLength      = 50
	MaxRestaurantPizzaNameLength = 100
	MinPrice                     = 1
	MaxPrice                     = 30
)

// ErrValidation matches every *ValidationError through errors.Is
var ErrValidation = errors.New("validation failed")

// ValidationError reports a rejected attribute assignment.
// Field is the column name of the attribute, Message is meant for humans.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidateRestaurantName returns the name unchanged when it fits the column,
// a *ValidationError otherwise. Length is counted in characters, not bytes.
func ValidateRestaurantName(name string) (string, error) {
	if utf8.RuneCountInString(name) > MaxRestaurantNameLength {
		return "", newValidationError("name", fmt.Sprintf("Name must be less than %d characters", MaxRestaurantNameLength))
	}
	return name, nil
}

// ValidatePrice accepts prices in the inclusive range [MinPrice, MaxPrice]
func ValidatePrice(price int) (int, error) {
	if price < MinPrice || price > MaxPrice {
		return 0, newValidationError("price", fmt.Sprintf("Price must be between %d and %d", MinPrice, MaxPrice))
	}
	return price, nil
}

// ValidateRestaurantPizzaName requires a non-blank name that fits restaurant_pizzas.name
func ValidateRestaurantPizzaName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", newValidationError("name", "Name is required")
	}
	if utf8.RuneCountInString(name) > MaxRestaurantPizzaNameLength {
		return "", newValidationError("name", fmt.Sprintf("Name must be less than %d characters", MaxRestaurantPizzaNameLength))
	}
	return name, nil
}
