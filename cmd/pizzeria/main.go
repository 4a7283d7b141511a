package main

import (
	"os"
)

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants sell them at
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
