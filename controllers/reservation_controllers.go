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

type ReservationController struct {
	DB        *gorm.DB
	lifecycle *services.LifecycleService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		DB:        db,
		lifecycle: services.NewLifecycleService(db),
	}
}

// GetAllReservations -> GET /admin/reservations?status=&date=
// El filtro de fecha cubre el día completo, sin importar la hora guardada.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	query := rc.DB.Model(&models.Reservation{})

	if status := c.Query("status"); status != "" && status != "todos" {
		if !models.IsValidReservationStatus(status) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("estado de reservación inválido"))
			return
		}
		query = query.Where("status = ?", status)
	}

	if date := c.Query("date"); date != "" {
		day, err := utils.ParseDate(date)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("fecha inválida"))
			return
		}
		start, end := utils.DayRange(day)
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	var reservations []models.Reservation
	if err := query.Order("date ASC, time ASC").Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener las reservaciones"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// CreateReservation -> formulario público de reservas
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	type request struct {
		Name   string `json:"name" binding:"required"`
		Email  string `json:"email" binding:"required,email"`
		Phone  string `json:"phone" binding:"required"`
		Date   string `json:"date" binding:"required"`
		Time   string `json:"time" binding:"required"`
		Guests int    `json:"guests" binding:"required,min=1,max=20"`
		Notes  string `json:"notes"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	phone, ok := utils.NormalizePhone(req.Phone)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Formato de teléfono inválido (ej: +34 600 123 456)"))
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("fecha inválida"))
		return
	}

	reservation := models.Reservation{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  phone,
		Date:   date,
		Time:   req.Time,
		Guests: req.Guests,
		Status: models.ReservationStatusPending,
	}
	if req.Notes != "" {
		reservation.Notes = &req.Notes
	}

	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al crear la reservación"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservación creada", reservation)
}

// GetReservationByID
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Reservación no encontrada"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener la reservación"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservation -> PATCH parcial: estado, fecha, hora, comensales, notas
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	type request struct {
		Status *string `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED NO_SHOW"`
		Date   *string `json:"date"`
		Time   *string `json:"time"`
		Guests *int    `json:"guests" binding:"omitempty,min=1,max=20"`
		Notes  *string `json:"notes"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	patch := services.ReservationPatch{
		Status: req.Status,
		Time:   req.Time,
		Guests: req.Guests,
		Notes:  req.Notes,
	}

	if req.Date != nil {
		date, err := utils.ParseDate(*req.Date)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("fecha inválida"))
			return
		}
		patch.Date = &date
	}

	reservation, err := rc.lifecycle.UpdateReservation(uint(id), patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Reservación no encontrada"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al actualizar la reservación"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// DeleteReservation
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Reservación no encontrada"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener la reservación"))
		return
	}

	if err := rc.DB.Delete(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al eliminar la reservación"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservación eliminada correctamente", gin.H{"reservation_id": id})
}
