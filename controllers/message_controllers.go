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

type MessageController struct {
	DB        *gorm.DB
	lifecycle *services.LifecycleService
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{
		DB:        db,
		lifecycle: services.NewLifecycleService(db),
	}
}

// GetAllMessages -> GET /admin/messages?status=
func (mc *MessageController) GetAllMessages(c *gin.Context) {
	query := mc.DB.Model(&models.ContactMessage{})

	if status := c.Query("status"); status != "" && status != "todos" {
		if !models.IsValidMessageStatus(status) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("estado de mensaje inválido"))
			return
		}
		query = query.Where("status = ?", status)
	}

	var messages []models.ContactMessage
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener los mensajes"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of messages", messages)
}

// CreateMessage -> formulario público de contacto
func (mc *MessageController) CreateMessage(c *gin.Context) {
	type request struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Message string `json:"message" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  models.MessageStatusPending,
	}

	if req.Phone != "" {
		phone, ok := utils.NormalizePhone(req.Phone)
		if !ok {
			utils.RespondError(c, http.StatusBadRequest, errors.New("Formato de teléfono inválido (ej: +34 600 123 456)"))
			return
		}
		msg.Phone = &phone
	}

	if err := mc.DB.Create(&msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al crear el mensaje"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Mensaje enviado", msg)
}

// GetMessageByID -> ver el detalle marca como READ si estaba PENDING
func (mc *MessageController) GetMessageByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("message_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	msg, err := mc.lifecycle.ViewMessage(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Mensaje no encontrado"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener el mensaje"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Message detail", msg)
}

// UpdateMessage -> PATCH solo admite cambio de estado
func (mc *MessageController) UpdateMessage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("message_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	type request struct {
		Status string `json:"status" binding:"required,oneof=PENDING READ REPLIED ARCHIVED"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	msg, err := mc.lifecycle.SetMessageStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Mensaje no encontrado"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al actualizar el mensaje"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Message updated", msg)
}

// DeleteMessage
func (mc *MessageController) DeleteMessage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("message_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	var msg models.ContactMessage
	if err := mc.DB.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Mensaje no encontrado"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener el mensaje"))
		return
	}

	if err := mc.DB.Delete(&msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al eliminar el mensaje"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Mensaje eliminado correctamente", gin.H{"message_id": id})
}
