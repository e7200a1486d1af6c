package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/models"
	"github.com/neggmmm/brandbite-sub000/utils"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetAllNotifications -> event log for one restaurant, newest first
func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	restaurantID, ok := paramUint(c, "restaurant_id")
	if !ok {
		return
	}
	var notifications []models.Notification
	if err := nc.DB.Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").Limit(100).
		Find(&notifications).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of notifications", notifications)
}
