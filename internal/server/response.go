package server

import "github.com/gofiber/fiber/v3"

// Envelope wraps every response body.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const (
	messageOK                  = "ok"
	messageBadRequest          = "bad request"
	messageUnauthorized        = "unauthorized"
	messageNotFound            = "not found"
	messageConflict            = "conflict"
	messageUnprocessableEntity = "unprocessable entity"
	messageUnavailable         = "service unavailable"
	messageInternal            = "internal server error"
)

func reply(c fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Envelope{Status: status, Message: defaultMessage(status), Data: data})
}

func replyError(c fiber.Ctx, status int, message string, data any) error {
	if message == "" {
		message = defaultMessage(status)
	}
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Data: data})
}

func defaultMessage(status int) string {
	switch status {
	case fiber.StatusOK, fiber.StatusCreated:
		return messageOK
	case fiber.StatusBadRequest:
		return messageBadRequest
	case fiber.StatusUnauthorized:
		return messageUnauthorized
	case fiber.StatusNotFound:
		return messageNotFound
	case fiber.StatusConflict:
		return messageConflict
	case fiber.StatusUnprocessableEntity:
		return messageUnprocessableEntity
	case fiber.StatusServiceUnavailable:
		return messageUnavailable
	}
	return messageInternal
}
