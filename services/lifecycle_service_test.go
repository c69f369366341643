package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Jabbcode/restaurante-app/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Dish{},
		&models.ContactMessage{},
		&models.Reservation{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestMessageReadAtSetOnce(t *testing.T) {
	db := setupTestDB(t, "lifecycle_msg")
	ls := NewLifecycleService(db)

	msg := models.ContactMessage{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Hola, ¿tienen menú vegetariano?",
		Status:  models.MessageStatusPending,
	}
	assert.NoError(t, db.Create(&msg).Error)
	assert.Nil(t, msg.ReadAt)

	// PENDING -> READ estampa ReadAt
	updated, err := ls.SetMessageStatus(msg.ID, models.MessageStatusRead)
	assert.NoError(t, err)
	assert.Equal(t, models.MessageStatusRead, updated.Status)
	assert.NotNil(t, updated.ReadAt)
	firstReadAt := *updated.ReadAt

	// Transiciones posteriores no tocan ReadAt
	time.Sleep(10 * time.Millisecond)
	updated, err = ls.SetMessageStatus(msg.ID, models.MessageStatusArchived)
	assert.NoError(t, err)
	assert.Equal(t, models.MessageStatusArchived, updated.Status)

	var stored models.ContactMessage
	assert.NoError(t, db.First(&stored, msg.ID).Error)
	assert.NotNil(t, stored.ReadAt)
	assert.WithinDuration(t, firstReadAt, *stored.ReadAt, time.Millisecond)

	// Volver a READ tampoco re-estampa
	time.Sleep(10 * time.Millisecond)
	_, err = ls.SetMessageStatus(msg.ID, models.MessageStatusRead)
	assert.NoError(t, err)
	assert.NoError(t, db.First(&stored, msg.ID).Error)
	assert.WithinDuration(t, firstReadAt, *stored.ReadAt, time.Millisecond)
}

func TestViewMessageMarksPendingAsRead(t *testing.T) {
	db := setupTestDB(t, "lifecycle_view")
	ls := NewLifecycleService(db)

	msg := models.ContactMessage{
		Name:    "Luis",
		Email:   "luis@example.com",
		Message: "Quiero información del local",
		Status:  models.MessageStatusPending,
	}
	assert.NoError(t, db.Create(&msg).Error)

	viewed, err := ls.ViewMessage(msg.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.MessageStatusRead, viewed.Status)
	assert.NotNil(t, viewed.ReadAt)
	firstReadAt := *viewed.ReadAt

	// Verlo otra vez no cambia nada
	time.Sleep(10 * time.Millisecond)
	viewed, err = ls.ViewMessage(msg.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.MessageStatusRead, viewed.Status)
	assert.WithinDuration(t, firstReadAt, *viewed.ReadAt, time.Millisecond)

	// Ver un mensaje REPLIED no lo degrada
	_, err = ls.SetMessageStatus(msg.ID, models.MessageStatusReplied)
	assert.NoError(t, err)
	viewed, err = ls.ViewMessage(msg.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.MessageStatusReplied, viewed.Status)
}

func TestReservationConfirmedAtSurvivesCancellation(t *testing.T) {
	db := setupTestDB(t, "lifecycle_res")
	ls := NewLifecycleService(db)

	res := models.Reservation{
		Name:   "Marta",
		Email:  "marta@example.com",
		Phone:  "+34600123456",
		Date:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:   "20:30",
		Guests: 4,
		Status: models.ReservationStatusPending,
	}
	assert.NoError(t, db.Create(&res).Error)

	updated, err := ls.SetReservationStatus(res.ID, models.ReservationStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, updated.Status)
	assert.NotNil(t, updated.ConfirmedAt)
	confirmedAt := *updated.ConfirmedAt

	// CONFIRMED -> CANCELLED deja ConfirmedAt intacto
	time.Sleep(10 * time.Millisecond)
	updated, err = ls.SetReservationStatus(res.ID, models.ReservationStatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCancelled, updated.Status)

	var stored models.Reservation
	assert.NoError(t, db.First(&stored, res.ID).Error)
	assert.NotNil(t, stored.ConfirmedAt)
	assert.WithinDuration(t, confirmedAt, *stored.ConfirmedAt, time.Millisecond)
}

func TestUpdateReservationPatchDoesNotTouchConfirmedAt(t *testing.T) {
	db := setupTestDB(t, "lifecycle_patch")
	ls := NewLifecycleService(db)

	res := models.Reservation{
		Name:   "Pedro",
		Email:  "pedro@example.com",
		Phone:  "+34611222333",
		Date:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		Time:   "21:00",
		Guests: 2,
		Status: models.ReservationStatusPending,
	}
	assert.NoError(t, db.Create(&res).Error)

	guests := 6
	notes := "Mesa junto a la ventana"
	updated, err := ls.UpdateReservation(res.ID, ReservationPatch{
		Guests: &guests,
		Notes:  &notes,
	})
	assert.NoError(t, err)
	assert.Equal(t, 6, updated.Guests)
	assert.Nil(t, updated.ConfirmedAt)
	assert.Equal(t, models.ReservationStatusPending, updated.Status)

	// Patch con estado CONFIRMED sí estampa
	status := models.ReservationStatusConfirmed
	updated, err = ls.UpdateReservation(res.ID, ReservationPatch{Status: &status})
	assert.NoError(t, err)
	assert.NotNil(t, updated.ConfirmedAt)
}

func TestStatusNotFoundAndInvalid(t *testing.T) {
	db := setupTestDB(t, "lifecycle_errs")
	ls := NewLifecycleService(db)

	_, err := ls.SetMessageStatus(9999, models.MessageStatusRead)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ls.SetReservationStatus(9999, models.ReservationStatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)

	msg := models.ContactMessage{Name: "X", Email: "x@example.com", Message: "hola", Status: models.MessageStatusPending}
	assert.NoError(t, db.Create(&msg).Error)

	_, err = ls.SetMessageStatus(msg.ID, "LEIDO")
	assert.Error(t, err)

	// El estado inválido no mutó nada
	var stored models.ContactMessage
	assert.NoError(t, db.First(&stored, msg.ID).Error)
	assert.Equal(t, models.MessageStatusPending, stored.Status)
	assert.Nil(t, stored.ReadAt)
}
