package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newtreichville/restaurant-api/live"
	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/services"
	"github.com/newtreichville/restaurant-api/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB      *gorm.DB
	Booking *services.BookingService
}

func NewReservationController(db *gorm.DB, booking *services.BookingService) *ReservationController {
	return &ReservationController{DB: db, Booking: booking}
}

// CreateReservation -> public booking endpoint. The request carries no
// status field; every new booking is stored pending.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		CustomerName    string  `json:"customer_name" binding:"required"`
		CustomerEmail   string  `json:"customer_email" binding:"required,email"`
		CustomerPhone   string  `json:"customer_phone" binding:"required"`
		ReservationDate string  `json:"reservation_date" binding:"required"`
		ReservationTime string  `json:"reservation_time" binding:"required"`
		Guests          int     `json:"guests" binding:"required,gt=0"`
		SpecialRequests *string `json:"special_requests"`
		TableID         *uint   `json:"table_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Booking.CreateReservation(services.ReservationRequest{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Date:            req.ReservationDate,
		Time:            req.ReservationTime,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		TableID:         req.TableID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	live.BroadcastReservationCreate(*reservation)

	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// GetAllReservations -> operator listing, newest first, optional
// ?date=YYYY-MM-DD and ?status= filters.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	query := rc.DB.Preload("Table").
		Order("reservation_date DESC, reservation_time DESC")

	if date := c.Query("date"); date != "" {
		query = query.Where("reservation_date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		if !models.IsValidReservationStatus(status) {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("invalid status: %q", status))
			return
		}
		query = query.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID -> operator detail view
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservationID := c.Param("reservation_id")
	var reservation models.Reservation
	if err := rc.DB.Preload("Table").First(&reservation, reservationID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservation -> operator status transition and table assignment.
// Any status may follow any other; the transition graph is deliberately
// unconstrained so staff can correct mistakes. Sending "table_id": 0 clears
// the assignment.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")
	var body struct {
		Status  *string `json:"status"`
		TableID *uint   `json:"table_id"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, reservationID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Status != nil {
		if !models.IsValidReservationStatus(*body.Status) {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("invalid status: %q", *body.Status))
			return
		}
		reservation.Status = *body.Status
	}

	if body.TableID != nil {
		if *body.TableID == 0 {
			reservation.TableID = nil
			reservation.Table = nil
		} else {
			var table models.Table
			if err := rc.DB.First(&table, *body.TableID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					utils.RespondError(c, http.StatusNotFound,
						fmt.Errorf("table %d not found", *body.TableID))
					return
				}
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
			reservation.TableID = body.TableID
		}
	}

	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastReservationUpdate(reservation)

	utils.InfoLogger.Printf("Reservation %d updated (status=%s)", reservation.ID, reservation.Status)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// DeleteReservation -> operator delete
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")
	var reservation models.Reservation

	if err := rc.DB.First(&reservation, reservationID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := rc.DB.Delete(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d deleted", reservation.ID)
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{
		"id": reservation.ID,
	})
}
