package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/utils"
	"gorm.io/gorm"
)

type DishController struct {
	DB *gorm.DB
}

func NewDishController(db *gorm.DB) *DishController {
	return &DishController{DB: db}
}

// GetAllDishes -> public menu listing. Only available dishes are shown;
// ?category_id= narrows to one category.
func (dc *DishController) GetAllDishes(c *gin.Context) {
	query := dc.DB.Where("is_available = ?", true).Order("category_id, name")

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var dishes []models.Dish
	if err := query.Find(&dishes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of dishes", dishes)
}

// GetFeaturedDishes -> available dishes flagged for the homepage
func (dc *DishController) GetFeaturedDishes(c *gin.Context) {
	var dishes []models.Dish
	if err := dc.DB.Where("is_available = ? AND is_featured = ?", true, true).
		Order("category_id, name").
		Find(&dishes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Featured dishes", dishes)
}

// GetDishByID -> public dish detail; unavailable dishes are hidden here too
func (dc *DishController) GetDishByID(c *gin.Context) {
	dishID := c.Param("dish_id")
	var dish models.Dish
	if err := dc.DB.Where("is_available = ?", true).First(&dish, dishID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish detail", dish)
}
