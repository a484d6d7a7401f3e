package models

import "time"

// Subcategory names only need to be unique within their parent category.
type Subcategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;uniqueIndex:idx_subcat_nombre_categoria" json:"nombre" validate:"required"`
	Description string    `json:"descripcion"`
	CategoryID  uint      `gorm:"not null;uniqueIndex:idx_subcat_nombre_categoria" json:"categoria" validate:"required"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
