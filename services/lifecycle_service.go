package services

import (
	"errors"
	"time"

	"github.com/Jabbcode/restaurante-app/models"
	"gorm.io/gorm"
)

// ErrNotFound lo devuelven los servicios cuando el registro no existe; los
// controllers lo traducen a 404.
var ErrNotFound = errors.New("record not found")

// LifecycleService aplica los cambios de estado de mensajes y reservaciones.
// La regla importante: ReadAt y ConfirmedAt se escriben exactamente una vez,
// dentro de la misma transacción que el cambio de estado.
type LifecycleService struct {
	DB *gorm.DB
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{DB: db}
}

// SetMessageStatus cambia el estado de un mensaje. Cualquier estado es
// alcanzable desde cualquier otro; solo READ tiene efecto secundario.
func (ls *LifecycleService) SetMessageStatus(id uint, newStatus string) (*models.ContactMessage, error) {
	if !models.IsValidMessageStatus(newStatus) {
		return nil, errors.New("estado de mensaje inválido")
	}

	var msg models.ContactMessage
	err := ls.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&msg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{"status": newStatus}
		if newStatus == models.MessageStatusRead && msg.ReadAt == nil {
			now := time.Now()
			updates["read_at"] = now
			msg.ReadAt = &now
		}
		msg.Status = newStatus

		return tx.Model(&models.ContactMessage{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ViewMessage devuelve el detalle de un mensaje. Ver un mensaje PENDING lo
// marca como READ; verlo en cualquier otro estado no lo toca.
func (ls *LifecycleService) ViewMessage(id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := ls.DB.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if msg.Status == models.MessageStatusPending {
		return ls.SetMessageStatus(id, models.MessageStatusRead)
	}
	return &msg, nil
}

// SetReservationStatus es el equivalente para reservaciones: CONFIRMED
// estampa ConfirmedAt solo la primera vez.
func (ls *LifecycleService) SetReservationStatus(id uint, newStatus string) (*models.Reservation, error) {
	if !models.IsValidReservationStatus(newStatus) {
		return nil, errors.New("estado de reservación inválido")
	}

	var res models.Reservation
	err := ls.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{"status": newStatus}
		if newStatus == models.ReservationStatusConfirmed && res.ConfirmedAt == nil {
			now := time.Now()
			updates["confirmed_at"] = now
			res.ConfirmedAt = &now
		}
		res.Status = newStatus

		return tx.Model(&models.Reservation{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ReservationPatch agrupa los campos editables de una reservación. Los
// punteros nil significan "no tocar".
type ReservationPatch struct {
	Status *string
	Date   *time.Time
	Time   *string
	Guests *int
	Notes  *string
}

// UpdateReservation aplica un patch parcial. El cambio de estado pasa por la
// misma regla de ConfirmedAt; el resto de campos nunca la tocan.
func (ls *LifecycleService) UpdateReservation(id uint, patch ReservationPatch) (*models.Reservation, error) {
	if patch.Status != nil && !models.IsValidReservationStatus(*patch.Status) {
		return nil, errors.New("estado de reservación inválido")
	}

	var res models.Reservation
	err := ls.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if patch.Status != nil {
			updates["status"] = *patch.Status
			res.Status = *patch.Status
			if *patch.Status == models.ReservationStatusConfirmed && res.ConfirmedAt == nil {
				now := time.Now()
				updates["confirmed_at"] = now
				res.ConfirmedAt = &now
			}
		}
		if patch.Date != nil {
			updates["date"] = *patch.Date
			res.Date = *patch.Date
		}
		if patch.Time != nil {
			updates["time"] = *patch.Time
			res.Time = *patch.Time
		}
		if patch.Guests != nil {
			updates["guests"] = *patch.Guests
			res.Guests = *patch.Guests
		}
		if patch.Notes != nil {
			updates["notes"] = *patch.Notes
			res.Notes = patch.Notes
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&models.Reservation{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
