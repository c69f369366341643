package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Jabbcode/restaurante-app/controllers"
	"github.com/Jabbcode/restaurante-app/models"
)

func setupAdminRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	searchCtrl := controllers.NewSearchController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	statsCtrl := controllers.NewStatsController(db)
	router.GET("/search", searchCtrl.GlobalSearch)
	router.GET("/notifications/counts", notificationCtrl.GetCounts)
	router.GET("/notifications", notificationCtrl.GetAllNotifications)
	router.GET("/stats", statsCtrl.GetStats)
	return router
}

func seedAdminData(t *testing.T, db *gorm.DB) {
	dishes := []models.Dish{
		{Name: "Paella Valenciana", Description: "Arroz tradicional", Price: 18, Image: "https://example.com/1.jpg", Category: models.CategoryPrincipales, Featured: true, Available: true},
		{Name: "Croquetas de Jamón", Description: "Croquetas caseras", Price: 9.5, Image: "https://example.com/2.jpg", Category: models.CategoryEntrantes, Available: true},
		{Name: "Flan Casero", Description: "Receta de la abuela", Price: 5, Image: "https://example.com/3.jpg", Category: models.CategoryPostres, Available: false},
	}
	for i := range dishes {
		assert.NoError(t, db.Create(&dishes[i]).Error)
	}

	messages := []models.ContactMessage{
		{Name: "Carlos", Email: "carlos@example.com", Message: "Consulta de paella para grupo", Status: models.MessageStatusPending},
		{Name: "Ana", Email: "ana@example.com", Message: "Felicitaciones", Status: models.MessageStatusRead},
	}
	for i := range messages {
		assert.NoError(t, db.Create(&messages[i]).Error)
	}

	start, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	reservations := []models.Reservation{
		{Name: "Marta", Email: "marta@example.com", Phone: "+34600000001", Date: start.Add(20 * time.Hour), Time: "20:00", Guests: 2, Status: models.ReservationStatusPending},
		{Name: "Pedro", Email: "pedro@example.com", Phone: "+34600000002", Date: start.AddDate(0, 0, 3), Time: "21:00", Guests: 4, Status: models.ReservationStatusConfirmed},
	}
	for i := range reservations {
		assert.NoError(t, db.Create(&reservations[i]).Error)
	}
}

func TestGlobalSearchEndpoint(t *testing.T) {
	db := setupTestDB(t, "admin_search")
	router := setupAdminRouter(db)
	seedAdminData(t, db)

	// Query corta: tres listas vacías
	w := doJSON(t, router, "GET", "/search?q=a", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Dishes       []json.RawMessage `json:"dishes"`
			Messages     []json.RawMessage `json:"messages"`
			Reservations []json.RawMessage `json:"reservations"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Dishes)
	assert.Empty(t, resp.Data.Messages)
	assert.Empty(t, resp.Data.Reservations)

	// "paella" aparece en un plato y en un mensaje, no en reservaciones
	w = doJSON(t, router, "GET", "/search?q=paella", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Dishes, 1)
	assert.Len(t, resp.Data.Messages, 1)
	assert.Empty(t, resp.Data.Reservations)
}

func TestNotificationCountsEndpoint(t *testing.T) {
	db := setupTestDB(t, "admin_counts")
	router := setupAdminRouter(db)
	seedAdminData(t, db)

	w := doJSON(t, router, "GET", "/notifications/counts", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Messages     int64 `json:"messages"`
			Reservations int64 `json:"reservations"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Data.Messages)
	assert.Equal(t, int64(1), resp.Data.Reservations)
}

func TestStatsEndpoint(t *testing.T) {
	db := setupTestDB(t, "admin_stats")
	router := setupAdminRouter(db)
	seedAdminData(t, db)

	w := doJSON(t, router, "GET", "/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Dishes struct {
				Total     int64 `json:"total"`
				Available int64 `json:"available"`
				Featured  int64 `json:"featured"`
			} `json:"dishes"`
			Messages struct {
				Total   int64 `json:"total"`
				Pending int64 `json:"pending"`
			} `json:"messages"`
			Reservations struct {
				Total   int64 `json:"total"`
				Pending int64 `json:"pending"`
			} `json:"reservations"`
			Extended *struct {
				ReservationsToday    int64            `json:"reservations_today"`
				MessagesByStatus     map[string]int64 `json:"messages_by_status"`
				ReservationsByStatus map[string]int64 `json:"reservations_by_status"`
				Last7                int64            `json:"reservations_last_7_days"`
				Last30               int64            `json:"reservations_last_30_days"`
			} `json:"extended"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data.Dishes.Total)
	assert.Equal(t, int64(2), resp.Data.Dishes.Available)
	assert.Equal(t, int64(1), resp.Data.Dishes.Featured)
	assert.Equal(t, int64(2), resp.Data.Messages.Total)
	assert.Equal(t, int64(1), resp.Data.Messages.Pending)
	assert.Equal(t, int64(2), resp.Data.Reservations.Total)
	assert.Equal(t, int64(1), resp.Data.Reservations.Pending)
	assert.Nil(t, resp.Data.Extended)

	// Versión extendida
	w = doJSON(t, router, "GET", "/stats?extended=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if assert.NotNil(t, resp.Data.Extended) {
		assert.Equal(t, int64(1), resp.Data.Extended.ReservationsToday)
		assert.Equal(t, int64(1), resp.Data.Extended.MessagesByStatus["PENDING"])
		assert.Equal(t, int64(1), resp.Data.Extended.ReservationsByStatus["CONFIRMED"])
		assert.Equal(t, int64(2), resp.Data.Extended.Last30)
	}
}
