package models

import "time"

const (
	OrderStatusPending   = "pendiente"
	OrderStatusPreparing = "preparacion"
	OrderStatusShipped   = "enviado"
	OrderStatusDelivered = "entregado"
	OrderStatusPaid      = "pagado"
	OrderStatusCancelled = "cancelado"
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	CustomerID      uint        `gorm:"not null" json:"cliente"`
	VendorID        *uint       `gorm:"default:null" json:"vendedor"`
	CourierID       *uint       `gorm:"default:null" json:"repartidor"`
	DeliveryAddress string      `gorm:"not null" json:"direccion_entrega" validate:"required"`
	Contact         string      `gorm:"not null" json:"contacto" validate:"required"`
	ExtraInfo       string      `json:"info_adicional"`
	Status          string      `gorm:"default:pendiente" json:"estado" validate:"omitempty,oneof=pendiente preparacion enviado entregado pagado cancelado"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"fecha_creacion"`
	UpdatedAt       time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
	Lines           []OrderLine `gorm:"foreignKey:OrderID" json:"productos"`
}

type OrderLine struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null" json:"pedido"`
	ProductID uint      `gorm:"not null" json:"producto" validate:"required"`
	Quantity  int       `gorm:"not null" json:"cantidad" validate:"required,gte=1"`
	UnitPrice float64   `json:"precio_unitario" validate:"gte=0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
