package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrPersistence       = errors.New("error de persistencia")
	ErrDeliveryFailed    = errors.New("no se pudo entregar la notificación")

	ErrEmailAlreadyExists = fmt.Errorf("%w: el correo ya está registrado", ErrDuplicate)

	ErrEmptyOrder      = fmt.Errorf("%w: debe incluir al menos un producto", ErrInvalidInput)
	ErrInvalidQuantity = fmt.Errorf("%w: la cantidad debe ser mayor a cero", ErrInvalidInput)
	ErrInvalidDiscount = fmt.Errorf("%w: porcentaje de descuento no válido", ErrInvalidInput)
	ErrInvalidID       = fmt.Errorf("%w: ID inválido", ErrInvalidInput)
	ErrOrderInvoiced   = fmt.Errorf("%w: la orden tiene facturas asociadas", ErrConflict)
	ErrInUse           = fmt.Errorf("%w: el registro está referenciado por otros datos", ErrConflict)

	// ErrInconsistentTotals indica que las líneas persistidas no cuadran con el total de la orden.
	ErrInconsistentTotals = errors.New("los totales de la orden no coinciden con sus líneas")
)

// Nombres de entidad usados en los mensajes de NotFoundError.
const (
	EntityClient   = "cliente"
	EntityOrder    = "orden"
	EntityProduct  = "producto"
	EntityUser     = "usuario"
	EntityStore    = "tienda"
	EntityRole     = "rol"
	EntityInvoice  = "factura"
	EntityDispatch = "envío de factura"
)

// NotFoundError identifica la entidad referenciada que no existe.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("%s con ID %d no encontrado", e.Entity, e.ID)
	}
	return e.Entity + " no encontrado"
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound construye un NotFoundError.
func NewNotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func ClientNotFound(id int64) error   { return NewNotFound(EntityClient, id) }
func OrderNotFound(id int64) error    { return NewNotFound(EntityOrder, id) }
func ProductNotFound(id int64) error  { return NewNotFound(EntityProduct, id) }
func UserNotFound(id int64) error     { return NewNotFound(EntityUser, id) }
func StoreNotFound(id int64) error    { return NewNotFound(EntityStore, id) }
func RoleNotFound(id int64) error     { return NewNotFound(EntityRole, id) }
func InvoiceNotFound(id int64) error  { return NewNotFound(EntityInvoice, id) }
func DispatchNotFound(id int64) error { return NewNotFound(EntityDispatch, id) }

// StockError: la cantidad pedida supera el stock disponible del producto.
type StockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("la cantidad ingresada para el producto con ID %d supera el stock disponible (%d > %d)",
		e.ProductID, e.Requested, e.Available)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

// ValidationError describe un campo de entrada fuera de rango o mal formado.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidation construye un ValidationError.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// PersistenceError envuelve fallos de la base de datos (begin, commit, conectividad).
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistence, e.Err} }

// NewPersistence envuelve err; devuelve nil si err es nil.
func NewPersistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}
