package services

import (
	"strings"
	"sync"
	"time"

	"github.com/Jabbcode/restaurante-app/models"
	"gorm.io/gorm"
)

// Máximo de resultados por entidad; el buscador no mezcla ni rankea entre
// entidades, devuelve tres listas acotadas.
const searchLimit = 5

type SearchService struct {
	DB *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{DB: db}
}

// Proyecciones reducidas para el dropdown de búsqueda del admin
type DishHit struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

type MessageHit struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ReservationHit struct {
	ID     uint      `json:"id"`
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
	Time   string    `json:"time"`
	Guests int       `json:"guests"`
	Status string    `json:"status"`
}

type SearchResult struct {
	Dishes       []DishHit        `json:"dishes"`
	Messages     []MessageHit     `json:"messages"`
	Reservations []ReservationHit `json:"reservations"`
}

// Search hace las tres consultas en paralelo. Con menos de 2 caracteres no
// toca la base y devuelve listas vacías.
func (ss *SearchService) Search(query string) (*SearchResult, error) {
	result := &SearchResult{
		Dishes:       []DishHit{},
		Messages:     []MessageHit{},
		Reservations: []ReservationHit{},
	}

	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return result, nil
	}

	pattern := "%" + strings.ToLower(query) + "%"

	var wg sync.WaitGroup
	var dishErr, msgErr, resErr error

	wg.Add(3)

	go func() {
		defer wg.Done()
		dishErr = ss.DB.Model(&models.Dish{}).
			Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
			Limit(searchLimit).
			Select("id, name, category, price, available").
			Scan(&result.Dishes).Error
	}()

	go func() {
		defer wg.Done()
		msgErr = ss.DB.Model(&models.ContactMessage{}).
			Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(message) LIKE ?", pattern, pattern, pattern).
			Limit(searchLimit).
			Select("id, name, email, status, created_at").
			Scan(&result.Messages).Error
	}()

	go func() {
		defer wg.Done()
		resErr = ss.DB.Model(&models.Reservation{}).
			Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?", pattern, pattern, pattern).
			Limit(searchLimit).
			Select("id, name, date, time, guests, status").
			Scan(&result.Reservations).Error
	}()

	wg.Wait()

	for _, err := range []error{dishErr, msgErr, resErr} {
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// PendingCounts devuelve los contadores que alimentan la campana de
// notificaciones. Siempre consulta la base, sin caché.
func (ss *SearchService) PendingCounts() (int64, int64, error) {
	var messages, reservations int64

	if err := ss.DB.Model(&models.ContactMessage{}).
		Where("status = ?", models.MessageStatusPending).
		Count(&messages).Error; err != nil {
		return 0, 0, err
	}

	if err := ss.DB.Model(&models.Reservation{}).
		Where("status = ?", models.ReservationStatusPending).
		Count(&reservations).Error; err != nil {
		return 0, 0, err
	}

	return messages, reservations, nil
}
