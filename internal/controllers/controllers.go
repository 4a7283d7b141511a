package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the controllers logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// resource names the error codes of one entity
type resource struct {
	name         string
	notFoundCode string
	conflictCode string
}

var (
	restaurantResource      = resource{"Restaurant", models.ErrRestaurantNotFound, models.ErrRestaurantNameTaken}
	pizzaResource           = resource{"Pizza", models.ErrPizzaNotFound, models.ErrConflict}
	restaurantPizzaResource = resource{"RestaurantPizza", models.ErrRestaurantPizzaNotFound, models.ErrConflict}
	clientResource          = resource{"Client", models.ErrClientNotFound, models.ErrConflict}
)

// parseID reads the :id path parameter as a positive integer
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid ID format",
			map[string]interface{}{"id": ctx.Param("id")}))
		return 0, false
	}
	return uint(id), true
}

// bindJSON binds the request body, answering 400 on malformed input
func bindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body",
			map[string]interface{}{"error": err.Error()}))
		return false
	}
	return true
}

// respondError translates service errors into API error responses
func respondError(ctx *gin.Context, err error, res resource) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusUnprocessableEntity, models.NewValidationAPIError(verr))
	case errors.Is(err, services.ErrInvalidRole):
		ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(models.ErrValidationFailed, err.Error(),
			map[string]interface{}{"field": "role"}))
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(res.notFoundCode, res.name+" not found"))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		ctx.JSON(http.StatusConflict, models.NewAPIError(res.conflictCode, res.name+" already exists"))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(models.ErrRestaurantPizzaInvalidReference,
			"Restaurant or pizza does not exist"))
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(models.ErrValidationFailed, "Constraint violated"))
	default:
		log.WithFields(logrus.Fields{
			"path":  ctx.FullPath(),
			"error": err.Error(),
		}).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}
