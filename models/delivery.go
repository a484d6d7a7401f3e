package models

import "time"

const (
	DeliveryStatusPending   = "pendiente"
	DeliveryStatusEnRoute   = "en_ruta"
	DeliveryStatusDelivered = "entregada"
)

type Delivery struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	OrderID         uint       `gorm:"not null;uniqueIndex" json:"pedido" validate:"required"`
	CourierID       *uint      `gorm:"default:null" json:"repartidor"`
	RouteID         *uint      `gorm:"default:null" json:"ruta"`
	AssignedAt      time.Time  `gorm:"autoCreateTime" json:"fecha_asignacion"`
	DeliveredAt     *time.Time `gorm:"default:null" json:"fecha_entrega"`
	Status          string     `gorm:"default:pendiente" json:"estado" validate:"omitempty,oneof=pendiente en_ruta entregada"`
	CurrentLocation string     `json:"ubicacion_actual"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
