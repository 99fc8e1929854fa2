package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newtreichville/restaurant-api/live"
	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/utils"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> counters for the operator dashboard
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalReservations int64 `json:"total_reservations"`
		TodayReservations int64 `json:"today_reservations"`
		ReservationStats  struct {
			Pending   int64 `json:"pending"`
			Confirmed int64 `json:"confirmed"`
			Cancelled int64 `json:"cancelled"`
			Completed int64 `json:"completed"`
			NoShow    int64 `json:"no_show"`
		} `json:"reservation_stats"`
		UnreadMessages int64 `json:"unread_messages"`
		TableStats     struct {
			Active   int64 `json:"active"`
			Inactive int64 `json:"inactive"`
		} `json:"table_stats"`
	}

	ac.DB.Model(&models.Reservation{}).Count(&stats.TotalReservations)
	ac.DB.Model(&models.Reservation{}).Where("reservation_date = ?", today).Count(&stats.TodayReservations)

	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationPending).Count(&stats.ReservationStats.Pending)
	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationConfirmed).Count(&stats.ReservationStats.Confirmed)
	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationCancelled).Count(&stats.ReservationStats.Cancelled)
	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationCompleted).Count(&stats.ReservationStats.Completed)
	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationNoShow).Count(&stats.ReservationStats.NoShow)

	ac.DB.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&stats.UnreadMessages)

	ac.DB.Model(&models.Table{}).Where("is_active = ?", true).Count(&stats.TableStats.Active)
	ac.DB.Model(&models.Table{}).Where("is_active = ?", false).Count(&stats.TableStats.Inactive)

	live.BroadcastMessage(live.Message{
		Event: live.EventDashboardUpdate,
		Data:  stats,
	})

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
