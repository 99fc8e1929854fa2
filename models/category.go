package models

type Category struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"type:varchar(100);unique;not null" json:"name"`
	Description  *string `gorm:"type:text" json:"description,omitempty"`
	DisplayOrder int     `gorm:"not null;default:0" json:"display_order"`
}
