package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/newtreichville/restaurant-api/live"
	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/services"
	"github.com/newtreichville/restaurant-api/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB           *gorm.DB
	Availability *services.AvailabilityService
}

func NewTableController(db *gorm.DB, availability *services.AvailabilityService) *TableController {
	return &TableController{DB: db, Availability: availability}
}

// GetAvailability -> public availability query.
// GET /tables/availability?date=YYYY-MM-DD&time=HH:MM&guests=N
func (tc *TableController) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	timeStr := c.Query("time")
	guestsStr := c.Query("guests")

	if dateStr == "" || timeStr == "" || guestsStr == "" {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("date, time and guests are required parameters"))
		return
	}

	guests, err := strconv.Atoi(guestsStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("invalid guests: must be an integer"))
		return
	}

	tables, err := tc.Availability.FindAvailableTables(dateStr, timeStr, guests)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

// CreateTable -> add a new table
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Capacity int    `json:"capacity" binding:"required,gt=0"`
		Location string `json:"location"`
		IsActive *bool  `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table := models.Table{
		Name:     req.Name,
		Capacity: req.Capacity,
		Location: req.Location,
		IsActive: true,
	}
	if req.IsActive != nil {
		table.IsActive = *req.IsActive
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastMessage(live.Message{
		Event: live.EventTableCreate,
		Data:  table,
	})

	utils.InfoLogger.Printf("New table created: %s (capacity=%d)", table.Name, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> list every table
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Order("name").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail of one table
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID := c.Param("table_id")
	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> partial update of name/capacity/location/active flag
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")
	var body struct {
		Name     *string `json:"name"`
		Capacity *int    `json:"capacity"`
		Location *string `json:"location"`
		IsActive *bool   `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != nil {
		table.Name = *body.Name
	}
	if body.Capacity != nil {
		if *body.Capacity < 1 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("capacity must be positive"))
			return
		}
		table.Capacity = *body.Capacity
	}
	if body.Location != nil {
		table.Location = *body.Location
	}
	if body.IsActive != nil {
		table.IsActive = *body.IsActive
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastMessage(live.Message{
		Event: live.EventTableUpdate,
		Data:  table,
	})

	utils.InfoLogger.Printf("Table %d updated", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> remove a table; reservations pointing at it keep their row
// with the table reference cleared (SET NULL constraint).
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")
	var table models.Table

	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastMessage(live.Message{
		Event: live.EventTableDelete,
		Data:  gin.H{"table_id": table.ID},
	})

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{
		"id": table.ID,
	})
}
