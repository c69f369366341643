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

type DishController struct {
	DB      *gorm.DB
	catalog *services.CatalogService
}

func NewDishController(db *gorm.DB) *DishController {
	return &DishController{
		DB:      db,
		catalog: services.NewCatalogService(db),
	}
}

// GetAllDishes -> GET /dishes?category=&available=&featured=
func (dc *DishController) GetAllDishes(c *gin.Context) {
	var filter services.DishFilter

	if category := c.Query("category"); category != "" && category != "todos" {
		if !models.IsValidCategory(category) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("categoría inválida"))
			return
		}
		filter.Category = &category
	}

	if available := c.Query("available"); available != "" {
		val := available == "true"
		filter.Available = &val
	}

	if featured := c.Query("featured"); featured != "" {
		val := featured == "true"
		filter.Featured = &val
	}

	dishes, err := dc.catalog.ListDishes(filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener los platos"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of dishes", dishes)
}

// CreateDish
func (dc *DishController) CreateDish(c *gin.Context) {
	type request struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description" binding:"required"`
		Price       float64 `json:"price" binding:"required,gt=0"`
		Image       string  `json:"image" binding:"required,url"`
		Category    string  `json:"category" binding:"required,oneof=entrantes principales postres bebidas"`
		Featured    bool    `json:"featured"`
		Available   *bool   `json:"available"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	dish := models.Dish{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Featured:    req.Featured,
		Available:   available,
	}

	if err := dc.catalog.CreateDish(&dish); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al crear el plato"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Dish created", dish)
}

// GetDishByID
func (dc *DishController) GetDishByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("dish_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	var dish models.Dish
	if err := dc.DB.First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Plato no encontrado"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener el plato"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dish detail", dish)
}

// UpdateDish -> PATCH parcial, solo toca los campos presentes
func (dc *DishController) UpdateDish(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("dish_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	type request struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price" binding:"omitempty,gt=0"`
		Image       *string  `json:"image" binding:"omitempty,url"`
		Category    *string  `json:"category" binding:"omitempty,oneof=entrantes principales postres bebidas"`
		Featured    *bool    `json:"featured"`
		Available   *bool    `json:"available"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var dish models.Dish
	if err := dc.DB.First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Plato no encontrado"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener el plato"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}

	if len(updates) > 0 {
		if err := dc.DB.Model(&dish).Updates(updates).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al actualizar el plato"))
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Dish updated", dish)
}

// DeleteDish -> borrado duro, la carta no versiona
func (dc *DishController) DeleteDish(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("dish_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	var dish models.Dish
	if err := dc.DB.First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Plato no encontrado"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al obtener el plato"))
		return
	}

	if err := dc.DB.Delete(&dish).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al eliminar el plato"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Plato eliminado correctamente", gin.H{"dish_id": id})
}

// ReorderDishes -> PATCH /dishes/reorder con el nuevo orden completo del set
// visible. Todo o nada: un id inexistente cancela el batch entero.
func (dc *DishController) ReorderDishes(c *gin.Context) {
	type request struct {
		Items []services.ReorderItem `json:"items" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Items array required"))
		return
	}

	if err := dc.catalog.Reorder(req.Items); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Plato no encontrado"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al reordenar platos"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dishes reordered", gin.H{"success": true})
}
