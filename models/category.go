package models

import "time"

type Category struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Name          string        `gorm:"unique;not null" json:"nombre" validate:"required"`
	Description   string        `json:"descripcion"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategorias,omitempty"`
	Products      []Product     `gorm:"foreignKey:CategoryID" json:"productos,omitempty"`
}
