package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/serialize"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// ListRestaurants retrieves all restaurants
	ListRestaurants(c *gin.Context)
	// GetRestaurant retrieves a restaurant with the pizzas it sells
	GetRestaurant(c *gin.Context)
	// CreateRestaurant creates a new restaurant
	CreateRestaurant(c *gin.Context)
	// UpdateRestaurant changes the name or address of a restaurant
	UpdateRestaurant(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas
	DeleteRestaurant(c *gin.Context)
}

// CreateRestaurantRequest is the body of POST /restaurants
type CreateRestaurantRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// UpdateRestaurantRequest is the body of PATCH /restaurants/:id
type UpdateRestaurantRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// ListRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/restaurants [get]
func (c *restaurantController) ListRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.ListRestaurants(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, restaurantResource)
		return
	}
	ctx.JSON(http.StatusOK, serialize.Restaurants(restaurants))
}

// GetRestaurant godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with the pizzas it sells and their prices
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/restaurants/{id} [get]
func (c *restaurantController) GetRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurant(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, restaurantResource)
		return
	}
	ctx.JSON(http.StatusOK, serialize.Restaurant(restaurant, nil))
}

// CreateRestaurant godoc
// @Summary Create a new restaurant
// @Description Create a restaurant. Names are unique and at most 50 characters long
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurant body CreateRestaurantRequest true "Restaurant"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/restaurants [post]
func (c *restaurantController) CreateRestaurant(ctx *gin.Context) {
	var req CreateRestaurantRequest
	if !bindJSON(ctx, &req) {
		return
	}

	restaurant, err := models.NewRestaurant(req.Name, req.Address)
	if err != nil {
		respondError(ctx, err, restaurantResource)
		return
	}

	created, err := c.service.CreateRestaurant(ctx.Request.Context(), *restaurant)
	if err != nil {
		respondError(ctx, err, restaurantResource)
		return
	}
	ctx.JSON(http.StatusCreated, serialize.Restaurant(created, nil))
}

// UpdateRestaurant godoc
// @Summary Update a restaurant
// @Description Change the name or address of a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param restaurant body UpdateRestaurantRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/restaurants/{id} [patch]
func (c *restaurantController) UpdateRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req UpdateRestaurantRequest
	if !bindJSON(ctx, &req) {
		return
	}

	updated, err := c.service.UpdateRestaurant(ctx.Request.Context(), id, services.RestaurantUpdate{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		respondError(ctx, err, restaurantResource)
		return
	}
	ctx.JSON(http.StatusOK, serialize.Restaurant(updated, nil))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant together with its restaurant pizzas
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, restaurantResource)
		return
	}
	ctx.Status(http.StatusNoContent)
}
