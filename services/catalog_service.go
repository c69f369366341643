package services

import (
	"errors"

	"github.com/Jabbcode/restaurante-app/models"
	"gorm.io/gorm"
)

// CatalogService mantiene el orden de los platos en la carta. El campo
// display_order es una secuencia global única para todas las categorías; un
// reorder dentro de una vista filtrada reescribe solo los platos listados con
// sus posiciones absolutas, así no choca con el resto.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// DishFilter: nil significa "sin filtro"
type DishFilter struct {
	Category  *string
	Available *bool
	Featured  *bool
}

// ListDishes devuelve los platos ordenados por display_order; empates se
// resuelven por fecha de creación.
func (cs *CatalogService) ListDishes(filter DishFilter) ([]models.Dish, error) {
	query := cs.DB.Model(&models.Dish{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var dishes []models.Dish
	if err := query.Order("display_order ASC, created_at ASC").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// CreateDish asigna al plato nuevo la siguiente posición de la secuencia
// global.
func (cs *CatalogService) CreateDish(dish *models.Dish) error {
	return cs.DB.Transaction(func(tx *gorm.DB) error {
		var maxOrder *int
		if err := tx.Model(&models.Dish{}).
			Select("MAX(display_order)").
			Row().Scan(&maxOrder); err != nil {
			return err
		}
		if maxOrder != nil {
			dish.DisplayOrder = *maxOrder + 1
		}
		return tx.Create(dish).Error
	})
}

// ReorderItem es una entrada del batch de reordenamiento
type ReorderItem struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order"`
}

// Reorder aplica el batch completo o nada: si algún id no existe se hace
// rollback y ningún plato cambia de posición.
func (cs *CatalogService) Reorder(items []ReorderItem) error {
	if len(items) == 0 {
		return errors.New("items array required")
	}

	return cs.DB.Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}

		// Verificar existencia antes de escribir nada
		var count int64
		if err := tx.Model(&models.Dish{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return ErrNotFound
		}

		for _, item := range items {
			if err := tx.Model(&models.Dish{}).
				Where("id = ?", item.ID).
				Update("display_order", item.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
