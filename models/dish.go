package models

import "time"

// Categorías válidas para la carta
const (
	CategoryEntrantes   = "entrantes"
	CategoryPrincipales = "principales"
	CategoryPostres     = "postres"
	CategoryBebidas     = "bebidas"
)

var DishCategories = []string{
	CategoryEntrantes,
	CategoryPrincipales,
	CategoryPostres,
	CategoryBebidas,
}

func IsValidCategory(category string) bool {
	for _, c := range DishCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Dish struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string    `gorm:"type:varchar(500);not null" json:"image"`
	Category    string    `gorm:"type:varchar(20);not null;index" json:"category"`
	Featured    bool      `gorm:"not null;default:false" json:"featured"`
	Available   bool      `gorm:"not null;default:true" json:"available"`
	// "order" es palabra reservada en SQL, la columna se llama display_order
	DisplayOrder int       `gorm:"column:display_order;not null;default:0;index" json:"order"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
