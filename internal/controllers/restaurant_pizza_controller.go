package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/serialize"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests for the rows pricing a pizza at a restaurant
type RestaurantPizzaController interface {
	GetRestaurantPizza(c *gin.Context)
	CreateRestaurantPizza(c *gin.Context)
	UpdateRestaurantPizza(c *gin.Context)
	DeleteRestaurantPizza(c *gin.Context)
}

// CreateRestaurantPizzaRequest is the body of POST /restaurant_pizzas.
// Price is a pointer so that a missing price is told apart from an out of range one.
type CreateRestaurantPizzaRequest struct {
	Name         string `json:"name" binding:"required"`
	Price        *int   `json:"price" binding:"required"`
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	PizzaID      uint   `json:"pizza_id" binding:"required"`
}

// UpdateRestaurantPizzaRequest is the body of PATCH /restaurant_pizzas/:id
type UpdateRestaurantPizzaRequest struct {
	Name  *string `json:"name"`
	Price *int    `json:"price"`
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// GetRestaurantPizza godoc
// @Summary Get restaurant pizza by ID
// @Description Get a price row with its restaurant and pizza
// @Tags restaurant_pizzas
// @Produce json
// @Param id path int true "RestaurantPizza ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/restaurant_pizzas/{id} [get]
func (c *restaurantPizzaController) GetRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	rp, err := c.service.GetRestaurantPizza(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, restaurantPizzaResource)
		return
	}
	ctx.JSON(http.StatusOK, serialize.RestaurantPizza(rp, nil))
}

// CreateRestaurantPizza godoc
// @Summary Sell a pizza at a restaurant
// @Description Create a price row. Price must be between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "RestaurantPizza"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if !bindJSON(ctx, &req) {
		return
	}

	rp, err := models.NewRestaurantPizza(req.Name, *req.Price, req.RestaurantID, req.PizzaID)
	if err != nil {
		respondError(ctx, err, restaurantPizzaResource)
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), *rp)
	if err != nil {
		respondError(ctx, err, restaurantPizzaResource)
		return
	}
	ctx.JSON(http.StatusCreated, serialize.RestaurantPizza(created, nil))
}

// UpdateRestaurantPizza godoc
// @Summary Update a restaurant pizza
// @Description Change the name or price of a row
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param id path int true "RestaurantPizza ID"
// @Param restaurant_pizza body UpdateRestaurantPizzaRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/restaurant_pizzas/{id} [patch]
func (c *restaurantPizzaController) UpdateRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req UpdateRestaurantPizzaRequest
	if !bindJSON(ctx, &req) {
		return
	}

	updated, err := c.service.UpdateRestaurantPizza(ctx.Request.Context(), id, services.RestaurantPizzaUpdate{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondError(ctx, err, restaurantPizzaResource)
		return
	}
	ctx.JSON(http.StatusOK, serialize.RestaurantPizza(updated, nil))
}

// DeleteRestaurantPizza godoc
// @Summary Delete a restaurant pizza
// @Tags restaurant_pizzas
// @Param id path int true "RestaurantPizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/restaurant_pizzas/{id} [delete]
func (c *restaurantPizzaController) DeleteRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurantPizza(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, restaurantPizzaResource)
		return
	}
	ctx.Status(http.StatusNoContent)
}
