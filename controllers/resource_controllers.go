package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/newtreichville/restaurant-api/utils"
	"gorm.io/gorm"
)

// ResourceController is the operator-side editing surface for catalog
// entities (categories, dishes, events). One generic gorm-backed handler
// replaces three near-identical CRUD controllers; the public read-only
// endpoints stay bespoke because each has its own filtering rules.
type ResourceController[T any] struct {
	DB    *gorm.DB
	label string // human-readable, used in response messages
	order string // default listing order
}

func NewResourceController[T any](db *gorm.DB, label, order string) *ResourceController[T] {
	return &ResourceController[T]{DB: db, label: label, order: order}
}

// List -> every record, including ones hidden from the public endpoints
func (r *ResourceController[T]) List(c *gin.Context) {
	var items []T
	if err := r.DB.Order(r.order).Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of "+r.label, items)
}

// Get -> one record by id
func (r *ResourceController[T]) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item T
	if err := r.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, r.label+" detail", item)
}

// Create -> insert a record from the request body
func (r *ResourceController[T]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := r.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("%s created", r.label)
	utils.RespondJSON(c, http.StatusCreated, r.label+" created", item)
}

// Update -> partial update. The body is applied as a column map so that
// false/zero values (unpublishing an event, hiding a dish) are written.
func (r *ResourceController[T]) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item T
	if err := r.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	delete(patch, "id")
	delete(patch, "created_at")
	delete(patch, "updated_at")

	if len(patch) > 0 {
		if err := r.DB.Model(&item).Updates(patch).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, r.label+" updated", item)
}

// Delete -> remove a record by id
func (r *ResourceController[T]) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item T
	if err := r.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := r.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("%s %d deleted", r.label, id)
	utils.RespondJSON(c, http.StatusOK, r.label+" deleted", gin.H{"id": id})
}
