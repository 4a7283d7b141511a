// Package server wires the controllers, middleware and OAuth2 endpoints into a gin engine.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/auth"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const serviceName = "pizza-restaurants-api"

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the request logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// NewRouter builds the gin engine with every route of the API
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))
	clientController := controllers.NewClientController(services.NewClientService(db))
	oauthService := auth.NewOAuthService(db, cfg.JWTSecret)

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// OAuth2 token endpoint (client_credentials)
	router.POST("/oauth/token", oauthService.HandleToken)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/restaurants", restaurantController.ListRestaurants)
			publicApi.GET("/restaurants/:id", restaurantController.GetRestaurant)
			publicApi.GET("/pizzas", pizzaController.ListPizzas)
			publicApi.GET("/pizzas/:id", pizzaController.GetPizza)
			publicApi.GET("/restaurant_pizzas/:id", restaurantPizzaController.GetRestaurantPizza)
		}

		// Protected routes require a bearer token issued by /oauth/token
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.OAuth2Auth([]byte(cfg.JWTSecret)))
		{
			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole(models.RoleAdmin))
			{
				adminApi.POST("/restaurants", restaurantController.CreateRestaurant)
				adminApi.PATCH("/restaurants/:id", restaurantController.UpdateRestaurant)
				adminApi.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

				adminApi.POST("/pizzas", pizzaController.CreatePizza)
				adminApi.PATCH("/pizzas/:id", pizzaController.UpdatePizza)
				adminApi.DELETE("/pizzas/:id", pizzaController.DeletePizza)

				adminApi.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)
				adminApi.PATCH("/restaurant_pizzas/:id", restaurantPizzaController.UpdateRestaurantPizza)
				adminApi.DELETE("/restaurant_pizzas/:id", restaurantPizzaController.DeleteRestaurantPizza)

				adminApi.POST("/clients", clientController.CreateClient)
				adminApi.GET("/clients", clientController.ListClients)
				adminApi.DELETE("/clients/:id", clientController.DeleteClient)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running and the database answers
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}

// Run serves the API until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           NewRouter(cfg, db),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
