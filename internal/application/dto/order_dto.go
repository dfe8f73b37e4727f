package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest body para POST /api/orders y PUT /api/orders/:id.
// Cantidad y descuento se validan en el dominio para conservar sus errores específicos.
type OrderRequest struct {
	ClientID int64              `json:"id_cliente" validate:"required,gt=0"`
	Status   string             `json:"estado" validate:"omitempty,max=50"`
	Lines    []OrderLineRequest `json:"detalles" validate:"dive"`
}

// OrderLineRequest línea propuesta (producto, cantidad, % de descuento).
type OrderLineRequest struct {
	ProductID int64           `json:"id_producto" validate:"required,gt=0"`
	Quantity  int             `json:"cantidad"`
	Discount  decimal.Decimal `json:"descuento"`
}

// OrderCreatedResponse respuesta de POST /api/orders.
type OrderCreatedResponse struct {
	Message string `json:"mensaje"`
	OrderID int64  `json:"id_orden"`
}

// OrderResponse orden con sus líneas.
type OrderResponse struct {
	ID        int64               `json:"id"`
	ClientID  int64               `json:"id_cliente"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"estado"`
	CreatedAt time.Time           `json:"fecha_creacion"`
	Lines     []OrderLineResponse `json:"detalles,omitempty"`
}

// OrderLineResponse línea tarifada tal como quedó persistida.
type OrderLineResponse struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"id_producto"`
	Quantity        int             `json:"cantidad"`
	UnitPrice       decimal.Decimal `json:"precio_unitario"`
	TaxRate         decimal.Decimal `json:"tasa_impuesto"`
	DiscountPercent decimal.Decimal `json:"porcentaje_descuento"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"impuesto"`
	DiscountAmount  decimal.Decimal `json:"descuento"`
	LineTotal       decimal.Decimal `json:"total_linea"`
}

// OrderListResponse lista paginada de órdenes (sin líneas).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
