package services

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupAvailabilityDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Table{}, &models.Reservation{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestAvailability(db *gorm.DB) *AvailabilityService {
	return NewAvailabilityService(db, 2*time.Hour, time.UTC)
}

func mustTime(t *testing.T, value string) time.Time {
	parsed, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return parsed
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		aS   string
		aE   string
		bS   string
		bE   string
		want bool
	}{
		{"identical windows", "2024-07-15 19:00", "2024-07-15 21:00", "2024-07-15 19:00", "2024-07-15 21:00", true},
		{"partial overlap", "2024-07-15 20:00", "2024-07-15 22:00", "2024-07-15 19:00", "2024-07-15 21:00", true},
		{"contained window", "2024-07-15 19:30", "2024-07-15 20:30", "2024-07-15 19:00", "2024-07-15 21:00", true},
		{"boundary touch end-to-start", "2024-07-15 19:00", "2024-07-15 21:00", "2024-07-15 21:00", "2024-07-15 23:00", false},
		{"boundary touch start-to-end", "2024-07-15 21:00", "2024-07-15 23:00", "2024-07-15 19:00", "2024-07-15 21:00", false},
		{"disjoint", "2024-07-15 12:00", "2024-07-15 14:00", "2024-07-15 19:00", "2024-07-15 21:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aS, aE := mustTime(t, tt.aS), mustTime(t, tt.aE)
			bS, bE := mustTime(t, tt.bS), mustTime(t, tt.bE)
			assert.Equal(t, tt.want, Overlaps(aS, aE, bS, bE))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(bS, bE, aS, aE))
		})
	}
}

// seedThreeTables creates the standard fixture: table A seats 2 with a
// confirmed 19:00 booking, table B seats 4 with a pending 20:00 booking,
// table C seats 4 and is free.
func seedThreeTables(t *testing.T, db *gorm.DB) (models.Table, models.Table, models.Table) {
	tableA := models.Table{Name: "A", Capacity: 2, IsActive: true}
	tableB := models.Table{Name: "B", Capacity: 4, IsActive: true}
	tableC := models.Table{Name: "C", Capacity: 4, IsActive: true}
	for _, table := range []*models.Table{&tableA, &tableB, &tableC} {
		if err := db.Create(table).Error; err != nil {
			t.Fatalf("seed table: %v", err)
		}
	}

	reservations := []models.Reservation{
		{
			CustomerName: "Alice", CustomerEmail: "alice@example.com", CustomerPhone: "0101",
			ReservationDate: "2024-07-15", ReservationTime: "19:00", Guests: 2,
			Status: models.ReservationConfirmed, TableID: &tableA.ID,
		},
		{
			CustomerName: "Bob", CustomerEmail: "bob@example.com", CustomerPhone: "0202",
			ReservationDate: "2024-07-15", ReservationTime: "20:00", Guests: 4,
			Status: models.ReservationPending, TableID: &tableB.ID,
		},
	}
	for i := range reservations {
		if err := db.Create(&reservations[i]).Error; err != nil {
			t.Fatalf("seed reservation: %v", err)
		}
	}
	return tableA, tableB, tableC
}

func tableNames(tables []models.Table) []string {
	names := make([]string, 0, len(tables))
	for _, table := range tables {
		names = append(names, table.Name)
	}
	return names
}

func TestFindAvailableTables_ExcludesOverlappingBookings(t *testing.T) {
	db := setupAvailabilityDB(t)
	seedThreeTables(t, db)
	svc := newTestAvailability(db)

	// 19:00-21:00 request: A is booked exactly then, B's 20:00-22:00
	// booking overlaps, only C is free.
	tables, err := svc.FindAvailableTables("2024-07-15", "19:00", 2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"C"}, tableNames(tables))
}

func TestFindAvailableTables_BoundaryTouchDoesNotBlock(t *testing.T) {
	db := setupAvailabilityDB(t)
	seedThreeTables(t, db)
	svc := newTestAvailability(db)

	// 21:00-23:00 request: A's booking ends exactly at 21:00 so A is free
	// again; B is booked until 22:00 and stays excluded.
	tables, err := svc.FindAvailableTables("2024-07-15", "21:00", 2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, tableNames(tables))
}

func TestFindAvailableTables_CapacityAndActiveFilters(t *testing.T) {
	db := setupAvailabilityDB(t)
	svc := newTestAvailability(db)

	small := models.Table{Name: "Small", Capacity: 2, IsActive: true}
	inactive := models.Table{Name: "Closed", Capacity: 8, IsActive: false}
	big := models.Table{Name: "Big", Capacity: 6, IsActive: true}
	for _, table := range []*models.Table{&small, &inactive, &big} {
		assert.NoError(t, db.Create(table).Error)
	}

	tables, err := svc.FindAvailableTables("2024-07-15", "19:00", 4)
	assert.NoError(t, err)
	// Small lacks capacity, Closed is inactive; neither ever appears.
	assert.Equal(t, []string{"Big"}, tableNames(tables))
}

func TestFindAvailableTables_NonBlockingStatusesNeverExclude(t *testing.T) {
	db := setupAvailabilityDB(t)
	svc := newTestAvailability(db)

	table := models.Table{Name: "T1", Capacity: 4, IsActive: true}
	assert.NoError(t, db.Create(&table).Error)

	for _, status := range []string{
		models.ReservationCancelled,
		models.ReservationCompleted,
		models.ReservationNoShow,
	} {
		res := models.Reservation{
			CustomerName: "X", CustomerEmail: "x@example.com", CustomerPhone: "0",
			ReservationDate: "2024-07-15", ReservationTime: "19:00", Guests: 4,
			Status: status, TableID: &table.ID,
		}
		assert.NoError(t, db.Create(&res).Error)
	}

	// Exactly matching windows, but none of the statuses block.
	tables, err := svc.FindAvailableTables("2024-07-15", "19:00", 4)
	assert.NoError(t, err)
	assert.Equal(t, []string{"T1"}, tableNames(tables))
}

func TestFindAvailableTables_EmptyCandidateSetIsNotAnError(t *testing.T) {
	db := setupAvailabilityDB(t)
	svc := newTestAvailability(db)

	tables, err := svc.FindAvailableTables("2024-07-15", "19:00", 10)
	assert.NoError(t, err)
	assert.Empty(t, tables)
	assert.NotNil(t, tables)
}

func TestFindAvailableTables_Validation(t *testing.T) {
	db := setupAvailabilityDB(t)
	svc := newTestAvailability(db)

	tests := []struct {
		name   string
		date   string
		time   string
		guests int
	}{
		{"bad date", "15-07-2024", "19:00", 2},
		{"bad time", "2024-07-15", "7pm", 2},
		{"zero guests", "2024-07-15", "19:00", 0},
		{"negative guests", "2024-07-15", "19:00", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.FindAvailableTables(tt.date, tt.time, tt.guests)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestFindAvailableTables_Idempotent(t *testing.T) {
	db := setupAvailabilityDB(t)
	seedThreeTables(t, db)
	svc := newTestAvailability(db)

	first, err := svc.FindAvailableTables("2024-07-15", "19:00", 2)
	assert.NoError(t, err)
	second, err := svc.FindAvailableTables("2024-07-15", "19:00", 2)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
