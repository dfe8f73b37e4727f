package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

// Códigos de error expuestos en dto.ErrorResponse.Code.
const (
	codeValidation        = "VALIDATION"
	codeInsufficientStock = "INSUFFICIENT_STOCK"
	codeNotFound          = "NOT_FOUND"
	codeConflict          = "CONFLICT"
	codeDeliveryFailed    = "DELIVERY_FAILED"
	codeInternal          = "INTERNAL"
)

const internalErrorMessage = "error interno del servidor"

var errInvalidBody = domain.NewValidation("", "cuerpo de la petición inválido")

// ErrorHandler traduce los errores devueltos por los handlers a respuestas {error, code}.
// Los errores no esperados se registran con request id y se responden con un mensaje genérico.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
		}

		status, code := classify(err)

		if status >= fiber.StatusInternalServerError && status != fiber.StatusBadGateway {
			log.WithRequestID(requestID(c)).Error().
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error no controlado")
			return c.Status(status).JSON(dto.ErrorResponse{Error: internalErrorMessage, Code: code})
		}
		return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error(), Code: code})
	}
}

// classify asocia cada familia de errores de dominio con su status HTTP.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusBadRequest, codeInsufficientStock
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, codeValidation
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, codeNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, codeConflict
	case errors.Is(err, domain.ErrDeliveryFailed):
		return fiber.StatusBadGateway, codeDeliveryFailed
	default:
		return fiber.StatusInternalServerError, codeInternal
	}
}

// paramID lee el parámetro :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return int64(id), nil
}

// pageFromQuery lee limit/offset con los mismos límites en todos los listados.
func pageFromQuery(c *fiber.Ctx) dto.PageResponse {
	p := dto.PageRequest{
		Limit:  c.QueryInt("limit", dto.DefaultPageLimit),
		Offset: c.QueryInt("offset", 0),
	}
	return p.Normalize()
}
