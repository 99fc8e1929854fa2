package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/utils"
	"gorm.io/gorm"
)

// ReservationRequest carries a booking request from the public API into the
// lifecycle manager. Status is deliberately absent: clients cannot pick one.
type ReservationRequest struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Date            string // YYYY-MM-DD
	Time            string // HH:MM
	Guests          int
	SpecialRequests *string
	TableID         *uint
}

// BookingService persists reservations and contact messages and fans out
// the notification emails each one triggers.
type BookingService struct {
	db            *gorm.DB
	mailer        Mailer
	operatorEmail string
}

func NewBookingService(db *gorm.DB, mailer Mailer, operatorEmail string) *BookingService {
	return &BookingService{db: db, mailer: mailer, operatorEmail: operatorEmail}
}

// CreateReservation validates and persists a booking. The stored status is
// always pending regardless of what the caller sent; confirmation is an
// operator action. Availability is not checked here — a conflicting booking
// is accepted and resolved out-of-band. After the row is saved, one email
// goes to the customer and one to the operator; a failed send is logged and
// otherwise ignored.
func (s *BookingService) CreateReservation(req ReservationRequest) (*models.Reservation, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, NewValidationError("customer_name", "is required")
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return nil, NewValidationError("customer_email", "is required")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, NewValidationError("customer_phone", "is required")
	}
	if _, err := time.Parse(DateLayout, req.Date); err != nil {
		return nil, NewValidationError("reservation_date", fmt.Sprintf("%q is not a valid date (expected YYYY-MM-DD)", req.Date))
	}
	if _, err := time.Parse(TimeLayout, req.Time); err != nil {
		return nil, NewValidationError("reservation_time", fmt.Sprintf("%q is not a valid time (expected HH:MM)", req.Time))
	}
	if req.Guests < 1 {
		return nil, NewValidationError("guests", "must be a positive integer")
	}

	if req.TableID != nil {
		var table models.Table
		if err := s.db.First(&table, *req.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "table", ID: *req.TableID}
			}
			return nil, err
		}
	}

	reservation := models.Reservation{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ReservationDate: req.Date,
		ReservationTime: req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		Status:          models.ReservationPending,
		TableID:         req.TableID,
	}
	if err := s.db.Create(&reservation).Error; err != nil {
		return nil, err
	}

	s.notify(reservation.CustomerEmail,
		fmt.Sprintf("Your reservation at New Treichville (ID: %d)", reservation.ID),
		customerReservationBody(&reservation))
	s.notify(s.operatorEmail,
		fmt.Sprintf("New reservation request (ID: %d)", reservation.ID),
		operatorReservationBody(&reservation))

	utils.InfoLogger.Printf("Reservation %d created for %s on %s at %s (%d guests)",
		reservation.ID, reservation.CustomerName, reservation.ReservationDate,
		reservation.ReservationTime, reservation.Guests)

	return &reservation, nil
}

// SubmitContactMessage persists a public contact-form message and notifies
// the operator. The message always starts unread; no acknowledgment is sent
// to the customer.
func (s *BookingService) SubmitContactMessage(name, email, subject, message string) (*models.ContactMessage, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", "is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, NewValidationError("email", "is required")
	}
	if strings.TrimSpace(subject) == "" {
		return nil, NewValidationError("subject", "is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, NewValidationError("message", "is required")
	}

	contact := models.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
		IsRead:  false,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}

	s.notify(s.operatorEmail,
		fmt.Sprintf("New contact message from %s (Subject: %s)", contact.Name, contact.Subject),
		operatorContactBody(&contact))

	utils.InfoLogger.Printf("Contact message %d received from %s", contact.ID, contact.Email)

	return &contact, nil
}

// notify sends one best-effort email. Failures are logged and absorbed so
// they never affect the request that triggered the notification.
func (s *BookingService) notify(to, subject, body string) {
	if err := s.mailer.Send(to, subject, body); err != nil {
		utils.ErrorLogger.Printf("Failed to send notification to %s: %v", to, err)
	}
}

func customerReservationBody(r *models.Reservation) string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your reservation request for %s at %s for %d guest(s) has been received "+
			"and is awaiting confirmation.\n\n"+
			"Request details:\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Special requests: %s\n\n"+
			"We will contact you shortly to confirm your table.\n\n"+
			"Kind regards,\nThe New Treichville team",
		r.CustomerName, displayDate(r.ReservationDate), r.ReservationTime, r.Guests,
		r.CustomerName, r.CustomerEmail, r.CustomerPhone, specialRequestsOrNone(r))
}

func operatorReservationBody(r *models.Reservation) string {
	table := "Not assigned"
	if r.TableID != nil {
		table = fmt.Sprintf("Table %d", *r.TableID)
	}
	return fmt.Sprintf(
		"A new reservation request has been made:\n\n"+
			"Customer: %s (%s, %s)\n"+
			"Date: %s at %s\n"+
			"Guests: %d\n"+
			"Table: %s\n"+
			"Special requests: %s\n\n"+
			"Current status: %s\n\n"+
			"Please review it in the admin dashboard.",
		r.CustomerName, r.CustomerEmail, r.CustomerPhone,
		displayDate(r.ReservationDate), r.ReservationTime, r.Guests, table,
		specialRequestsOrNone(r), models.ReservationStatusLabels[r.Status])
}

func operatorContactBody(m *models.ContactMessage) string {
	return fmt.Sprintf(
		"A new contact message has been received:\n\n"+
			"From: %s (%s)\n"+
			"Subject: %s\n"+
			"Message:\n%s\n\n"+
			"Please review it in the admin dashboard or reply directly.",
		m.Name, m.Email, m.Subject, m.Message)
}

func specialRequestsOrNone(r *models.Reservation) string {
	if r.SpecialRequests == nil || *r.SpecialRequests == "" {
		return "None"
	}
	return *r.SpecialRequests
}

// displayDate renders a stored YYYY-MM-DD date as DD/MM/YYYY for emails.
func displayDate(dateStr string) string {
	d, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return dateStr
	}
	return d.Format("02/01/2006")
}
