package models

import "time"

// Estados de una reservación. Igual que los mensajes, cualquier estado es
// alcanzable desde cualquier otro; ConfirmedAt solo se escribe una vez.
const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusCancelled = "CANCELLED"
	ReservationStatusCompleted = "COMPLETED"
	ReservationStatusNoShow    = "NO_SHOW"
)

var ReservationStatuses = []string{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCancelled,
	ReservationStatusCompleted,
	ReservationStatusNoShow,
}

func IsValidReservationStatus(status string) bool {
	for _, s := range ReservationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null" json:"email"`
	Phone string `gorm:"type:varchar(30);not null" json:"phone"`
	// Date guarda el día; la franja horaria va aparte como texto ("20:30")
	Date        time.Time  `gorm:"not null;index" json:"date"`
	Time        string     `gorm:"type:varchar(10);not null" json:"time"`
	Guests      int        `gorm:"not null" json:"guests"`
	Notes       *string    `gorm:"type:text" json:"notes,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}
