package models

import "time"

// CustomerRoute pins a customer's geolocation to a delivery route.
type CustomerRoute struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null" json:"cliente" validate:"required"`
	RouteID    uint      `gorm:"not null" json:"ruta" validate:"required"`
	Latitude   *float64  `gorm:"default:null" json:"latitud"`
	Longitude  *float64  `gorm:"default:null" json:"longitud"`
	Address    string    `json:"direccion"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
