package models

import "time"

// Invoice mirrors the fixed commercial document format: one per order.
type Invoice struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OrderID          uint      `gorm:"not null;uniqueIndex" json:"pedido" validate:"required"`
	SellerName       string    `gorm:"not null" json:"nombre_vendedor" validate:"required"`
	SellerAddress    string    `gorm:"not null" json:"domicilio_vendedor" validate:"required"`
	RecipientName    string    `gorm:"not null" json:"nombre_destinatario" validate:"required"`
	RecipientAddress string    `gorm:"not null" json:"domicilio_destinatario" validate:"required"`
	GoodsDescription string    `gorm:"not null" json:"descripcion_mercancias" validate:"required"`
	PackagingType    string    `json:"tipo_embalaje"`
	Marks            string    `json:"marcas"`
	Numbers          string    `json:"numeros"`
	Classes          string    `json:"clases"`
	Quantities       string    `json:"cantidades"`
	CommercialTerm   string    `json:"termino_comercial"`
	FreightCharges   float64   `gorm:"default:0" json:"fletes" validate:"gte=0"`
	Insurance        float64   `gorm:"default:0" json:"seguro" validate:"gte=0"`
	PlaceOfIssue     string    `gorm:"not null" json:"lugar_expedicion" validate:"required"`
	IssueDate        time.Time `gorm:"autoCreateTime" json:"fecha_expedicion"`
	PaymentMethod    string    `gorm:"not null" json:"metodo_pago" validate:"required"`
	TotalAmount      float64   `gorm:"not null" json:"monto_total" validate:"gte=0"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
