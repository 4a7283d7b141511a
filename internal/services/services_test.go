package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// linkedFixture creates one restaurant and one pizza joined by a price of 15
func linkedFixture(t *testing.T, db *gorm.DB) (models.Restaurant, models.Pizza, models.RestaurantPizza) {
	ctx := context.Background()

	r, err := models.NewRestaurant("Dominos", "1 Main St")
	require.NoError(t, err)
	restaurant, err := NewRestaurantService(db).CreateRestaurant(ctx, *r)
	require.NoError(t, err)

	pizza, err := NewPizzaService(db).CreatePizza(ctx, *models.NewPizza("Cheese", "Dough, Tomato Sauce, Cheese"))
	require.NoError(t, err)

	rp, err := models.NewRestaurantPizza("Cheese at Dominos", 15, restaurant.ID, pizza.ID)
	require.NoError(t, err)
	link, err := NewRestaurantPizzaService(db).CreateRestaurantPizza(ctx, *rp)
	require.NoError(t, err)

	return restaurant, pizza, link
}
