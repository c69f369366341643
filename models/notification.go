package models

import (
	"time"
)

// Tipos de alerta que genera el monitor de pendientes
const (
	NotificationNewMessages     = "new_messages"
	NotificationNewReservations = "new_reservations"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"type:varchar(50);not null" json:"type"`
	Title     string    `gorm:"type:varchar(100);not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
