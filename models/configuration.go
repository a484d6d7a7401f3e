package models

import "time"

// Configuration is the restaurant's single business-info record. The row is
// pinned to id 1 and lazily created on first read.
type Configuration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"nombre"`
	Address   string    `json:"direccion"`
	Phone     string    `json:"telefono"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
