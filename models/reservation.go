package models

import "time"

// Reservation statuses. A new booking always starts out pending; everything
// after that is an operator decision.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
	ReservationNoShow    = "no-show"
)

// BlockingStatuses are the statuses that count against a table's
// availability. Cancelled, completed and no-show bookings never block.
var BlockingStatuses = []string{ReservationPending, ReservationConfirmed}

// ReservationStatusLabels maps a status to its human-readable form, used in
// operator notification emails.
var ReservationStatusLabels = map[string]string{
	ReservationPending:   "Pending",
	ReservationConfirmed: "Confirmed",
	ReservationCancelled: "Cancelled",
	ReservationCompleted: "Completed",
	ReservationNoShow:    "No-Show",
}

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerName    string    `gorm:"type:varchar(200);not null" json:"customer_name"`
	CustomerEmail   string    `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone   string    `gorm:"type:varchar(20);not null" json:"customer_phone"`
	ReservationDate string    `gorm:"type:varchar(10);not null;index" json:"reservation_date"` // YYYY-MM-DD
	ReservationTime string    `gorm:"type:varchar(5);not null" json:"reservation_time"`        // HH:MM
	Guests          int       `gorm:"not null" json:"guests"`
	SpecialRequests *string   `gorm:"type:text" json:"special_requests,omitempty"`
	Status          string    `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	TableID         *uint     `json:"table_id,omitempty"`
	Table           *Table    `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"table,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsValidReservationStatus reports whether s is one of the known statuses.
func IsValidReservationStatus(s string) bool {
	_, ok := ReservationStatusLabels[s]
	return ok
}
