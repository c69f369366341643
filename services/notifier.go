package services

import (
	"fmt"
	"time"

	"github.com/Jabbcode/restaurante-app/alerts"
	"github.com/Jabbcode/restaurante-app/models"
	"github.com/Jabbcode/restaurante-app/utils"
	"gorm.io/gorm"
)

// Notifier revisa cada Interval los contadores de pendientes y avisa cuando
// suben respecto al último snapshot. El primer poll solo establece la línea
// base, no dispara alertas aunque ya haya pendientes acumulados.
type Notifier struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration

	search *SearchService

	baselined        bool
	lastMessages     int64
	lastReservations int64
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 60 * time.Second,
		search:   NewSearchService(db),
	}
}

func (n *Notifier) Start() {
	go func() {
		// Poll inicial para fijar la línea base
		n.Poll()

		ticker := time.NewTicker(n.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n.Poll()
			case <-n.StopChan:
				return
			}
		}
	}()
}

func (n *Notifier) Stop() {
	close(n.StopChan)
}

// Poll compara el snapshot actual con el anterior. Solo los incrementos
// generan alerta; bajadas y sin-cambios no hacen nada.
func (n *Notifier) Poll() {
	messages, reservations, err := n.search.PendingCounts()
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching pending counts: %v", err)
		return
	}

	if !n.baselined {
		n.lastMessages = messages
		n.lastReservations = reservations
		n.baselined = true
		return
	}

	if messages > n.lastMessages {
		delta := messages - n.lastMessages
		n.recordAlert(models.NotificationNewMessages,
			fmt.Sprintf("%d nuevo(s) mensaje(s)", delta),
			"Tienes mensajes pendientes de revisar")
		alerts.BroadcastNewMessages(delta, messages)
	}

	if reservations > n.lastReservations {
		delta := reservations - n.lastReservations
		n.recordAlert(models.NotificationNewReservations,
			fmt.Sprintf("%d nueva(s) reservacion(es)", delta),
			"Tienes reservaciones pendientes de confirmar")
		alerts.BroadcastNewReservations(delta, reservations)
	}

	alerts.BroadcastCounts(messages, reservations)

	n.lastMessages = messages
	n.lastReservations = reservations
}

func (n *Notifier) recordAlert(notifType, title, body string) {
	notif := models.Notification{
		Type:    notifType,
		Title:   title,
		Message: body,
	}
	if err := n.DB.Create(&notif).Error; err != nil {
		utils.ErrorLogger.Printf("Error saving notification: %v", err)
	}
	utils.InfoLogger.Printf("Alert: %s", title)
}
