package models

import "time"

// Estados de un mensaje de contacto. No hay grafo de transiciones: el admin
// puede mover un mensaje a cualquier estado, solo ReadAt tiene regla propia.
const (
	MessageStatusPending  = "PENDING"
	MessageStatusRead     = "READ"
	MessageStatusReplied  = "REPLIED"
	MessageStatusArchived = "ARCHIVED"
)

var MessageStatuses = []string{
	MessageStatusPending,
	MessageStatusRead,
	MessageStatusReplied,
	MessageStatusArchived,
}

func IsValidMessageStatus(status string) bool {
	for _, s := range MessageStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type ContactMessage struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	Email   string  `gorm:"type:varchar(255);not null" json:"email"`
	Phone   *string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Message string  `gorm:"type:text;not null" json:"message"`
	Status  string  `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	// ReadAt se escribe una sola vez, en la primera transición a READ
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}
