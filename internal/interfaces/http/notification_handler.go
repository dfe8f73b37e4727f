package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/notification"
	"github.com/jhoicas/ordenes-api/internal/application/validation"
)

// NotificationHandler envío directo de correos y SMS.
type NotificationHandler struct {
	uc       *notification.UseCase
	validate *validation.Validator
}

func NewNotificationHandler(uc *notification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc, validate: validation.New()}
}

// SendEmail godoc
// @Summary      Enviar correo
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendEmailRequest  true  "Destinatario, asunto y mensaje"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/notifications/email [post]
func (h *NotificationHandler) SendEmail(c *fiber.Ctx) error {
	var in dto.SendEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return errInvalidBody
	}
	if err := h.validate.Struct(in); err != nil {
		return err
	}
	if err := h.uc.SendEmail(c.UserContext(), in.To, in.Subject, in.Message); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "correo enviado exitosamente"})
}

// SendSMS godoc
// @Summary      Enviar SMS
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendSMSRequest  true  "Destinatario (E.164) y mensaje"
// @Success      200   {object}  dto.SMSResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/notifications/sms [post]
func (h *NotificationHandler) SendSMS(c *fiber.Ctx) error {
	var in dto.SendSMSRequest
	if err := c.BodyParser(&in); err != nil {
		return errInvalidBody
	}
	if err := h.validate.Struct(in); err != nil {
		return err
	}
	sid, err := h.uc.SendSMS(c.UserContext(), in.To, in.Message)
	if err != nil {
		return err
	}
	return c.JSON(dto.SMSResponse{Message: "SMS enviado exitosamente", MessageID: sid})
}
