package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newtreichville/restaurant-api/live"
	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/services"
	"github.com/newtreichville/restaurant-api/utils"
	"gorm.io/gorm"
)

type ContactController struct {
	DB      *gorm.DB
	Booking *services.BookingService
}

func NewContactController(db *gorm.DB, booking *services.BookingService) *ContactController {
	return &ContactController{DB: db, Booking: booking}
}

// CreateContactMessage -> public contact form submission. The stored
// message always starts unread, whatever the client sent.
func (cc *ContactController) CreateContactMessage(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	contact, err := cc.Booking.SubmitContactMessage(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	live.BroadcastContactCreate(*contact)

	utils.RespondJSON(c, http.StatusCreated, "Message received", contact)
}

// GetAllContactMessages -> operator inbox, newest first
func (cc *ContactController) GetAllContactMessages(c *gin.Context) {
	var messages []models.ContactMessage
	if err := cc.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of contact messages", messages)
}

// GetContactMessageByID -> operator detail view
func (cc *ContactController) GetContactMessageByID(c *gin.Context) {
	messageID := c.Param("message_id")
	var message models.ContactMessage
	if err := cc.DB.First(&message, messageID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Contact message detail", message)
}

// MarkContactMessageRead -> the only mutation a contact message allows
func (cc *ContactController) MarkContactMessageRead(c *gin.Context) {
	messageID := c.Param("message_id")
	var message models.ContactMessage
	if err := cc.DB.First(&message, messageID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	message.IsRead = true
	if err := cc.DB.Save(&message).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Contact message marked as read", message)
}
