package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/serialize"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// ListPizzas retrieves all pizzas
	ListPizzas(c *gin.Context)
	// GetPizza retrieves a pizza with the restaurants selling it
	GetPizza(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

// CreatePizzaRequest is the body of POST /pizzas
type CreatePizzaRequest struct {
	Name        string `json:"name" binding:"required"`
	Ingredients string `json:"ingredients"`
}

// UpdatePizzaRequest is the body of PATCH /pizzas/:id
type UpdatePizzaRequest struct {
	Name        *string `json:"name"`
	Ingredients *string `json:"ingredients"`
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// ListPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas without their restaurants
// @Tags pizzas
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/pizzas [get]
func (c *pizzaController) ListPizzas(ctx *gin.Context) {
	pizzas, err := c.service.ListPizzas(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, pizzaResource)
		return
	}
	ctx.JSON(http.StatusOK, serialize.Pizzas(pizzas))
}

// GetPizza godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with the restaurants that sell it
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzas/{id} [get]
func (c *pizzaController) GetPizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	pizza, err := c.service.GetPizza(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, pizzaResource)
		return
	}
	ctx.JSON(http.StatusOK, serialize.Pizza(pizza, nil))
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza with the input payload
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body CreatePizzaRequest true "Pizza"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var req CreatePizzaRequest
	if !bindJSON(ctx, &req) {
		return
	}

	created, err := c.service.CreatePizza(ctx.Request.Context(), *models.NewPizza(req.Name, req.Ingredients))
	if err != nil {
		respondError(ctx, err, pizzaResource)
		return
	}
	ctx.JSON(http.StatusCreated, serialize.Pizza(created, nil))
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Change the name or ingredients of a pizza
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body UpdatePizzaRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas/{id} [patch]
func (c *pizzaController) UpdatePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req UpdatePizzaRequest
	if !bindJSON(ctx, &req) {
		return
	}

	updated, err := c.service.UpdatePizza(ctx.Request.Context(), id, services.PizzaUpdate{
		Name:        req.Name,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		respondError(ctx, err, pizzaResource)
		return
	}
	ctx.JSON(http.StatusOK, serialize.Pizza(updated, nil))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza together with its restaurant pizzas
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, pizzaResource)
		return
	}
	ctx.Status(http.StatusNoContent)
}
