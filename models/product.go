package models

import "time"

type Product struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Name          string       `gorm:"not null" json:"nombre" validate:"required"`
	Price         float64      `gorm:"not null" json:"precio" validate:"gte=0"`
	Description   string       `json:"descripcion"`
	Available     *bool        `gorm:"default:true" json:"disponible"`
	Image         string       `json:"imagen"`
	CategoryID    uint         `gorm:"not null" json:"categoria_id" validate:"required"`
	SubcategoryID *uint        `gorm:"default:null" json:"subcategoria_id"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"fecha_creacion"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
	Category      Category     `gorm:"foreignKey:CategoryID" json:"categoria"`
	Subcategory   *Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategoria,omitempty"`
}
