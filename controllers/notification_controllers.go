package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Jabbcode/restaurante-app/models"
	"github.com/Jabbcode/restaurante-app/services"
	"github.com/Jabbcode/restaurante-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB     *gorm.DB
	search *services.SearchService
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{
		DB:     db,
		search: services.NewSearchService(db),
	}
}

// GetCounts -> GET /admin/notifications/counts
// Alimenta la campana del panel; siempre lee el estado actual de la base.
func (nc *NotificationController) GetCounts(c *gin.Context) {
	messages, reservations, err := nc.search.PendingCounts()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener contadores"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pending counts", gin.H{
		"messages":     messages,
		"reservations": reservations,
	})
}

// GetAllNotifications -> historial de alertas generadas por el monitor
func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	var notifs []models.Notification
	if err := nc.DB.Order("created_at DESC").Limit(100).Find(&notifs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All notifications", notifs)
}

// DeleteNotification
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("notif_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	if err := nc.DB.Delete(&models.Notification{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification deleted", gin.H{"notif_id": id})
}
