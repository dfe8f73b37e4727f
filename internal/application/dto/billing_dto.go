package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRequest body para POST /api/invoices y PUT /api/invoices/:id.
// El cliente se toma de la orden; los totales se recalculan desde sus líneas.
type InvoiceRequest struct {
	OrderID       int64  `json:"id_orden" validate:"required,gt=0"`
	UserID        int64  `json:"id_usuario" validate:"required,gt=0"`
	StoreID       int64  `json:"id_tienda" validate:"required,gt=0"`
	Status        string `json:"estado" validate:"omitempty,max=50"`
	PaymentMethod string `json:"metodo_pago" validate:"omitempty,max=50"`
	Notes         string `json:"observaciones" validate:"omitempty,max=500"`
}

// InvoiceCreatedResponse respuesta de POST /api/invoices.
type InvoiceCreatedResponse struct {
	Message   string `json:"mensaje"`
	InvoiceID int64  `json:"id_factura"`
}

// InvoiceResponse factura para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"id_orden"`
	ClientID      int64           `json:"id_cliente"`
	UserID        int64           `json:"id_usuario"`
	StoreID       int64           `json:"id_tienda"`
	GrossTotal    decimal.Decimal `json:"total_bruto"`
	TaxTotal      decimal.Decimal `json:"impuestos"`
	DiscountTotal decimal.Decimal `json:"descuentos"`
	NetTotal      decimal.Decimal `json:"total_neto"`
	Status        string          `json:"estado"`
	PaymentMethod string          `json:"metodo_pago,omitempty"`
	Notes         string          `json:"observaciones,omitempty"`
	IssuedAt      time.Time       `json:"fecha_emision"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// DispatchRequest body para POST /api/invoice-dispatches.
type DispatchRequest struct {
	InvoiceID int64  `json:"id_factura" validate:"required,gt=0"`
	Status    string `json:"estado" validate:"required,max=50"`
}

// UpdateDispatchRequest body para PUT /api/invoice-dispatches/:id.
type UpdateDispatchRequest struct {
	Status string `json:"estado" validate:"required,max=50"`
}

// DispatchResponse envío de factura (un registro por intento).
type DispatchResponse struct {
	ID            int64     `json:"id"`
	InvoiceID     int64     `json:"id_factura"`
	Status        string    `json:"estado"`
	Channel       string    `json:"canal"`
	Recipient     string    `json:"destinatario"`
	Delivered     bool      `json:"entregado"`
	DeliveryError string    `json:"error_entrega,omitempty"`
	SentAt        time.Time `json:"fecha_envio"`
}

// DispatchFailedResponse cuerpo 502: el envío quedó registrado pero no se entregó.
type DispatchFailedResponse struct {
	Error    string           `json:"error"`
	Dispatch DispatchResponse `json:"envio"`
}
