package models

import "time"

type Route struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"nombre" validate:"required"`
	Description string    `json:"descripcion"`
	Active      *bool     `gorm:"default:true" json:"activa"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
