package router

import (
	"github.com/Jabbcode/restaurante-app/controllers"
	"github.com/Jabbcode/restaurante-app/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inicializar controllers
	userCtrl := controllers.NewUserController(db)
	dishCtrl := controllers.NewDishController(db)
	messageCtrl := controllers.NewMessageController(db)
	reservationCtrl := controllers.NewReservationController(db)
	searchCtrl := controllers.NewSearchController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	statsCtrl := controllers.NewStatsController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Login/register con rate limit estricto
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Carta pública
	r.GET("/dishes", dishCtrl.GetAllDishes)
	r.GET("/dishes/:dish_id", dishCtrl.GetDishByID)

	// Formularios públicos (contacto y reservas), también con rate limit
	forms := r.Group("/")
	forms.Use(middlewares.NewStrictRateLimiter())
	{
		forms.POST("/messages", messageCtrl.CreateMessage)
		forms.POST("/reservations", reservationCtrl.CreateReservation)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())
	auth.Use(middlewares.RequireAdmin())

	auth.GET("/profile", userCtrl.GetProfile)

	// DISHES
	auth.GET("/dishes", dishCtrl.GetAllDishes)
	auth.POST("/dishes", dishCtrl.CreateDish)
	auth.PATCH("/dishes/reorder", dishCtrl.ReorderDishes)
	auth.GET("/dishes/:dish_id", dishCtrl.GetDishByID)
	auth.PATCH("/dishes/:dish_id", dishCtrl.UpdateDish)
	auth.DELETE("/dishes/:dish_id", dishCtrl.DeleteDish)

	// MESSAGES (ver el detalle marca PENDING -> READ)
	auth.GET("/messages", messageCtrl.GetAllMessages)
	auth.GET("/messages/:message_id", messageCtrl.GetMessageByID)
	auth.PATCH("/messages/:message_id", messageCtrl.UpdateMessage)
	auth.DELETE("/messages/:message_id", messageCtrl.DeleteMessage)

	// RESERVATIONS
	auth.GET("/reservations", reservationCtrl.GetAllReservations)
	auth.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	auth.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
	auth.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)

	// SEARCH / NOTIFICATIONS / STATS
	auth.GET("/search", searchCtrl.GlobalSearch)
	auth.GET("/notifications/counts", notificationCtrl.GetCounts)
	auth.GET("/notifications", notificationCtrl.GetAllNotifications)
	auth.DELETE("/notifications/:notif_id", notificationCtrl.DeleteNotification)
	auth.GET("/stats", statsCtrl.GetStats)

	// Alertas en tiempo real para el panel
	auth.GET("/ws", controllers.AlertsHandler)

	return r
}
