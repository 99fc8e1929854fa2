package Controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/newtreichville/restaurant-api/controllers"
	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/services"
)

func setupReservationRouter(db *gorm.DB, mailer services.Mailer) *gin.Engine {
	router := gin.New()
	booking := services.NewBookingService(db, mailer, "manager@example.com")
	reservationCtrl := controllers.NewReservationController(db, booking)
	router.POST("/reservations", reservationCtrl.CreateReservation)
	router.GET("/admin/reservations", reservationCtrl.GetAllReservations)
	router.PATCH("/admin/reservations/:reservation_id", reservationCtrl.UpdateReservation)
	router.DELETE("/admin/reservations/:reservation_id", reservationCtrl.DeleteReservation)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReservation_ClientStatusIgnored(t *testing.T) {
	db := setupTestDB(t)
	mailer := newRecordingMailer()
	router := setupReservationRouter(db, mailer)

	// The payload tries to self-confirm; the stored record is pending.
	w := postJSON(t, router, "/reservations", map[string]interface{}{
		"customer_name":    "Carol",
		"customer_email":   "carol@example.com",
		"customer_phone":   "0303",
		"reservation_date": "2024-07-15",
		"reservation_time": "19:00",
		"guests":           2,
		"status":           "confirmed",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var stored models.Reservation
	assert.NoError(t, db.First(&stored).Error)
	assert.Equal(t, models.ReservationPending, stored.Status)
}

func TestCreateReservation_TwoNotificationAttempts(t *testing.T) {
	db := setupTestDB(t)
	mailer := newRecordingMailer()
	router := setupReservationRouter(db, mailer)

	w := postJSON(t, router, "/reservations", map[string]interface{}{
		"customer_name":    "Carol",
		"customer_email":   "carol@example.com",
		"customer_phone":   "0303",
		"reservation_date": "2024-07-15",
		"reservation_time": "19:00",
		"guests":           2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, mailer.sent, 2)
	assert.Equal(t, "carol@example.com", mailer.sent[0].To)
	assert.Equal(t, "manager@example.com", mailer.sent[1].To)
}

func TestCreateReservation_MailFailureStillSucceeds(t *testing.T) {
	db := setupTestDB(t)
	mailer := newRecordingMailer()
	mailer.failFor["carol@example.com"] = errors.New("mailbox unavailable")
	router := setupReservationRouter(db, mailer)

	w := postJSON(t, router, "/reservations", map[string]interface{}{
		"customer_name":    "Carol",
		"customer_email":   "carol@example.com",
		"customer_phone":   "0303",
		"reservation_date": "2024-07-15",
		"reservation_time": "19:00",
		"guests":           2,
	})

	// The response still reports success and the row is persisted.
	assert.Equal(t, http.StatusCreated, w.Code)
	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateReservation_MissingFields(t *testing.T) {
	db := setupTestDB(t)
	router := setupReservationRouter(db, newRecordingMailer())

	w := postJSON(t, router, "/reservations", map[string]interface{}{
		"customer_name": "Carol",
		"guests":        2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateReservation_StatusTransition(t *testing.T) {
	db := setupTestDB(t)
	router := setupReservationRouter(db, newRecordingMailer())

	reservation := models.Reservation{
		CustomerName: "Carol", CustomerEmail: "carol@example.com", CustomerPhone: "0303",
		ReservationDate: "2024-07-15", ReservationTime: "19:00", Guests: 2,
		Status: models.ReservationPending,
	}
	assert.NoError(t, db.Create(&reservation).Error)

	payload, _ := json.Marshal(map[string]string{"status": "confirmed"})
	url := fmt.Sprintf("/admin/reservations/%d", reservation.ID)
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Reservation
	assert.NoError(t, db.First(&stored, reservation.ID).Error)
	assert.Equal(t, models.ReservationConfirmed, stored.Status)
}

func TestUpdateReservation_RejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	router := setupReservationRouter(db, newRecordingMailer())

	reservation := models.Reservation{
		CustomerName: "Carol", CustomerEmail: "carol@example.com", CustomerPhone: "0303",
		ReservationDate: "2024-07-15", ReservationTime: "19:00", Guests: 2,
		Status: models.ReservationPending,
	}
	assert.NoError(t, db.Create(&reservation).Error)

	payload, _ := json.Marshal(map[string]string{"status": "seated"})
	url := fmt.Sprintf("/admin/reservations/%d", reservation.ID)
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateReservation_AssignAndClearTable(t *testing.T) {
	db := setupTestDB(t)
	router := setupReservationRouter(db, newRecordingMailer())

	table := models.Table{Name: "Window", Capacity: 4, IsActive: true}
	assert.NoError(t, db.Create(&table).Error)

	reservation := models.Reservation{
		CustomerName: "Carol", CustomerEmail: "carol@example.com", CustomerPhone: "0303",
		ReservationDate: "2024-07-15", ReservationTime: "19:00", Guests: 2,
		Status: models.ReservationPending,
	}
	assert.NoError(t, db.Create(&reservation).Error)

	url := fmt.Sprintf("/admin/reservations/%d", reservation.ID)

	// Assign.
	payload, _ := json.Marshal(map[string]uint{"table_id": table.ID})
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Reservation
	assert.NoError(t, db.First(&stored, reservation.ID).Error)
	assert.NotNil(t, stored.TableID)
	assert.Equal(t, table.ID, *stored.TableID)

	// Clear with table_id 0.
	payload, _ = json.Marshal(map[string]uint{"table_id": 0})
	req, _ = http.NewRequest("PATCH", url, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	stored = models.Reservation{}
	assert.NoError(t, db.First(&stored, reservation.ID).Error)
	assert.Nil(t, stored.TableID)
}

func TestUpdateReservation_UnknownTable(t *testing.T) {
	db := setupTestDB(t)
	router := setupReservationRouter(db, newRecordingMailer())

	reservation := models.Reservation{
		CustomerName: "Carol", CustomerEmail: "carol@example.com", CustomerPhone: "0303",
		ReservationDate: "2024-07-15", ReservationTime: "19:00", Guests: 2,
		Status: models.ReservationPending,
	}
	assert.NoError(t, db.Create(&reservation).Error)

	payload, _ := json.Marshal(map[string]uint{"table_id": 99})
	url := fmt.Sprintf("/admin/reservations/%d", reservation.ID)
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAllReservations_Filters(t *testing.T) {
	db := setupTestDB(t)
	router := setupReservationRouter(db, newRecordingMailer())

	seed := []models.Reservation{
		{CustomerName: "A", CustomerEmail: "a@example.com", CustomerPhone: "1",
			ReservationDate: "2024-07-15", ReservationTime: "19:00", Guests: 2, Status: models.ReservationPending},
		{CustomerName: "B", CustomerEmail: "b@example.com", CustomerPhone: "2",
			ReservationDate: "2024-07-16", ReservationTime: "20:00", Guests: 4, Status: models.ReservationConfirmed},
	}
	for i := range seed {
		assert.NoError(t, db.Create(&seed[i]).Error)
	}

	req, _ := http.NewRequest("GET", "/admin/reservations?date=2024-07-15", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []models.Reservation `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "A", response.Data[0].CustomerName)

	req, _ = http.NewRequest("GET", "/admin/reservations?status=confirmed", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	response.Data = nil
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "B", response.Data[0].CustomerName)
}
