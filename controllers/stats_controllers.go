package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Jabbcode/restaurante-app/models"
	"github.com/Jabbcode/restaurante-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

type entityCounts struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available,omitempty"`
	Featured  int64 `json:"featured,omitempty"`
	Pending   int64 `json:"pending,omitempty"`
}

type extendedStats struct {
	ReservationsToday      int64            `json:"reservations_today"`
	MessagesByStatus       map[string]int64 `json:"messages_by_status"`
	ReservationsByStatus   map[string]int64 `json:"reservations_by_status"`
	ReservationsLast7Days  int64            `json:"reservations_last_7_days"`
	ReservationsLast30Days int64            `json:"reservations_last_30_days"`
}

// GetStats -> GET /admin/stats[?extended=true]
// Los números del dashboard. Con extended=true agrega reservaciones de hoy,
// desgloses por estado y totales de 7 y 30 días.
func (sc *StatsController) GetStats(c *gin.Context) {
	var stats struct {
		Dishes       entityCounts   `json:"dishes"`
		Messages     entityCounts   `json:"messages"`
		Reservations entityCounts   `json:"reservations"`
		Extended     *extendedStats `json:"extended,omitempty"`
	}

	db := sc.DB

	if err := db.Model(&models.Dish{}).Count(&stats.Dishes.Total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener las estadísticas"))
		return
	}
	db.Model(&models.Dish{}).Where("available = ?", true).Count(&stats.Dishes.Available)
	db.Model(&models.Dish{}).Where("featured = ?", true).Count(&stats.Dishes.Featured)

	db.Model(&models.ContactMessage{}).Count(&stats.Messages.Total)
	db.Model(&models.ContactMessage{}).Where("status = ?", models.MessageStatusPending).Count(&stats.Messages.Pending)

	db.Model(&models.Reservation{}).Count(&stats.Reservations.Total)
	db.Model(&models.Reservation{}).Where("status = ?", models.ReservationStatusPending).Count(&stats.Reservations.Pending)

	if c.Query("extended") == "true" {
		ext := &extendedStats{
			MessagesByStatus:     map[string]int64{},
			ReservationsByStatus: map[string]int64{},
		}

		start, end := utils.DayRange(time.Now())
		db.Model(&models.Reservation{}).
			Where("date >= ? AND date < ?", start, end).
			Count(&ext.ReservationsToday)

		for _, status := range models.MessageStatuses {
			var n int64
			db.Model(&models.ContactMessage{}).Where("status = ?", status).Count(&n)
			ext.MessagesByStatus[status] = n
		}

		for _, status := range models.ReservationStatuses {
			var n int64
			db.Model(&models.Reservation{}).Where("status = ?", status).Count(&n)
			ext.ReservationsByStatus[status] = n
		}

		db.Model(&models.Reservation{}).
			Where("created_at >= ?", time.Now().AddDate(0, 0, -7)).
			Count(&ext.ReservationsLast7Days)
		db.Model(&models.Reservation{}).
			Where("created_at >= ?", time.Now().AddDate(0, 0, -30)).
			Count(&ext.ReservationsLast30Days)

		stats.Extended = ext
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
