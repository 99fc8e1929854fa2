package services

import (
	"fmt"
	"time"

	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/utils"
	"gorm.io/gorm"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Overlaps reports whether two half-open reservation windows intersect.
// Windows that merely touch at an endpoint do not overlap, so a booking
// ending at 21:00 leaves the table free for a 21:00 booking.
func Overlaps(existingStart, existingEnd, requestedStart, requestedEnd time.Time) bool {
	return existingStart.Before(requestedEnd) && existingEnd.After(requestedStart)
}

// AvailabilityService answers which tables are free for a requested date,
// time and party size. Every booking is assumed to occupy a fixed duration
// from its start time.
type AvailabilityService struct {
	db       *gorm.DB
	duration time.Duration
	loc      *time.Location
}

func NewAvailabilityService(db *gorm.DB, duration time.Duration, loc *time.Location) *AvailabilityService {
	return &AvailabilityService{db: db, duration: duration, loc: loc}
}

// FindAvailableTables returns the active tables with enough capacity that
// have no blocking reservation overlapping the requested window, ordered by
// capacity then name. Parse or validation failures return a
// *ValidationError and no query is executed.
func (s *AvailabilityService) FindAvailableTables(dateStr, timeStr string, guests int) ([]models.Table, error) {
	date, err := time.ParseInLocation(DateLayout, dateStr, s.loc)
	if err != nil {
		return nil, NewValidationError("date", fmt.Sprintf("%q is not a valid date (expected YYYY-MM-DD)", dateStr))
	}
	tod, err := time.Parse(TimeLayout, timeStr)
	if err != nil {
		return nil, NewValidationError("time", fmt.Sprintf("%q is not a valid time (expected HH:MM)", timeStr))
	}
	if guests < 1 {
		return nil, NewValidationError("guests", "must be a positive integer")
	}

	requestedStart := time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0, s.loc)
	requestedEnd := requestedStart.Add(s.duration)

	available := []models.Table{}

	// The candidate fetch and the per-table reservation fetches run inside
	// one transaction so the scan sees a consistent snapshot. Nothing is
	// locked; two concurrent bookings for the same slot can still both
	// succeed and are resolved by an operator.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var candidates []models.Table
		if err := tx.Where("is_active = ? AND capacity >= ?", true, guests).
			Order("capacity, name").
			Find(&candidates).Error; err != nil {
			return err
		}

		for _, table := range candidates {
			blocked, err := s.hasConflict(tx, table.ID, dateStr, requestedStart, requestedEnd)
			if err != nil {
				return err
			}
			if !blocked {
				available = append(available, table)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return available, nil
}

// hasConflict reports whether any blocking reservation on the table for the
// given date overlaps the requested window.
func (s *AvailabilityService) hasConflict(tx *gorm.DB, tableID uint, dateStr string, requestedStart, requestedEnd time.Time) (bool, error) {
	var reservations []models.Reservation
	if err := tx.Where("table_id = ? AND reservation_date = ? AND status IN ?",
		tableID, dateStr, models.BlockingStatuses).
		Find(&reservations).Error; err != nil {
		return false, err
	}

	for _, res := range reservations {
		existingStart, err := s.windowStart(res.ReservationDate, res.ReservationTime)
		if err != nil {
			utils.ErrorLogger.Printf("Reservation %d has unparseable date/time (%s %s): %v",
				res.ID, res.ReservationDate, res.ReservationTime, err)
			continue
		}
		if Overlaps(existingStart, existingStart.Add(s.duration), requestedStart, requestedEnd) {
			return true, nil
		}
	}
	return false, nil
}

func (s *AvailabilityService) windowStart(dateStr, timeStr string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, dateStr, s.loc)
	if err != nil {
		return time.Time{}, err
	}
	tod, err := time.Parse(TimeLayout, timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0, s.loc), nil
}
