package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/utils"
	"gorm.io/gorm"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// GetAllEvents -> public listing of published events, soonest first
func (ec *EventController) GetAllEvents(c *gin.Context) {
	var events []models.Event
	if err := ec.DB.Where("is_published = ?", true).
		Order("event_date, event_time").
		Find(&events).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of events", events)
}

// GetEventByID -> public event detail; unpublished events are hidden
func (ec *EventController) GetEventByID(c *gin.Context) {
	eventID := c.Param("event_id")
	var event models.Event
	if err := ec.DB.Where("is_published = ?", true).First(&event, eventID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Event detail", event)
}
