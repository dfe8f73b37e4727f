package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordenes-api/pkg/logger"
)

// requestIDKey clave de Locals que usa el middleware requestid de fiber.
const requestIDKey = "requestid"

// RequestLogger registra método, ruta, status, latencia y request id de cada petición.
// Resuelve el error con el ErrorHandler de la app antes de registrar el status final.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		reqLog := log.WithRequestID(requestID(c))
		event := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			event = reqLog.Warn()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok && id != "" {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
