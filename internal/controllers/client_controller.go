package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CreateClientRequest is the body of POST /clients
type CreateClientRequest struct {
	Name   string `json:"name" binding:"required"`
	Domain string `json:"domain"`
	Role   string `json:"role"`
	Scopes string `json:"scopes"`
}

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// CreateClient godoc
// @Summary Create API client
// @Description Create a client allowed to request tokens with the client_credentials grant
// @Tags API Clients
// @Accept json
// @Produce json
// @Param client body CreateClientRequest true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} models.APIError "Invalid request"
// @Failure 422 {object} models.APIError "Unknown role"
// @Security BearerAuth
// @Router /api/v1/protected/admin/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, secret, err := cc.clientService.CreateClient(c.Request.Context(), models.APIClient{
		Name:   req.Name,
		Domain: req.Domain,
		Role:   req.Role,
		Scopes: req.Scopes,
	})
	if err != nil {
		respondError(c, err, clientResource)
		return
	}

	log.WithFields(logrus.Fields{
		"client_id":  client.ID,
		"role":       client.Role,
		"created_by": c.GetString("clientID"),
	}).Info("API client created through the API")

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret, // Return plain secret only once
		"name":          client.Name,
		"role":          client.Role,
		"scopes":        client.Scopes,
	})
}

// ListClients godoc
// @Summary List API clients
// @Description Get all API clients
// @Tags API Clients
// @Produce json
// @Success 200 {array} models.APIClient "List of clients"
// @Failure 500 {object} models.APIError "Failed to retrieve clients"
// @Security BearerAuth
// @Router /api/v1/protected/admin/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, err, clientResource)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary Delete API client
// @Description Delete an API client. Tokens already issued stay valid until they expire
// @Tags API Clients
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.APIError "Client not found"
// @Security BearerAuth
// @Router /api/v1/protected/admin/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	clientID := c.Param("id")

	if err := cc.clientService.DeleteClient(c.Request.Context(), clientID); err != nil {
		respondError(c, err, clientResource)
		return
	}

	c.Status(http.StatusNoContent)
}
