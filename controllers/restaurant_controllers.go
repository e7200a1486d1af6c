package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/models"
	"github.com/neggmmm/brandbite-sub000/services"
	"github.com/neggmmm/brandbite-sub000/utils"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// CreateRestaurant -> register a restaurant with its booking limits
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		OpeningTime  string `json:"opening_time"`
		ClosingTime  string `json:"closing_time"`
		MaxPartySize int    `json:"max_party_size"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := models.Restaurant{
		Name:         req.Name,
		OpeningTime:  "10:00",
		ClosingTime:  "22:00",
		MaxPartySize: 20,
	}
	if req.OpeningTime != "" {
		if _, err := utils.ParseClock(req.OpeningTime); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		restaurant.OpeningTime = req.OpeningTime
	}
	if req.ClosingTime != "" {
		if _, err := utils.ParseClock(req.ClosingTime); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		restaurant.ClosingTime = req.ClosingTime
	}
	if req.MaxPartySize > 0 {
		restaurant.MaxPartySize = req.MaxPartySize
	}

	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.InfoLogger.Printf("Restaurant %q registered", restaurant.Name)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", restaurant)
}

// GetRestaurant -> one restaurant
func (rc *RestaurantController) GetRestaurant(c *gin.Context) {
	id, ok := paramUint(c, "restaurant_id")
	if !ok {
		return
	}
	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, services.ErrRestaurantNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}
