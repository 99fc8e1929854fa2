package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/utils"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GetAllCategories -> public menu category listing, display order first,
// ties broken by name.
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := cc.DB.Order("display_order, name").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All menu categories", categories)
}

// GetCategoryByID -> public category detail
func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	categoryID := c.Param("cat_id")
	var category models.Category
	if err := cc.DB.First(&category, categoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category detail", category)
}
