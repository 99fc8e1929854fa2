package models

import "time"

type Event struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(200);not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	EventDate       string    `gorm:"type:varchar(10);not null" json:"event_date"` // YYYY-MM-DD
	EventTime       string    `gorm:"type:varchar(5);not null" json:"event_time"`  // HH:MM
	ImageURL        *string   `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	Capacity        *int      `json:"capacity,omitempty"`
	IsPublished     bool      `gorm:"not null;default:false" json:"is_published"`
	BookingRequired bool      `gorm:"not null;default:false" json:"booking_required"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
