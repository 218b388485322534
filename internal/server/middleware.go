package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/talents/internal/auth"
)

const ctxAdminEmail = "admin_email"

// TokenValidator checks admin bearer tokens.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

func adminOnly(tokens TokenValidator) fiber.Handler {
	return func(c fiber.Ctx) error {
		if tokens == nil {
			return newAppError(fiber.StatusServiceUnavailable, "admin login is not configured", nil)
		}
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return newAppError(fiber.StatusUnauthorized, "missing bearer token", nil)
		}
		claims, err := tokens.Validate(token)
		if err != nil {
			return newAppError(fiber.StatusUnauthorized, "invalid token", err)
		}
		c.Locals(ctxAdminEmail, claims.Email)
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func accessLog(logger *zap.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, rid)

		err := c.Next()

		logger.Info("http request",
			zap.String("rid", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}
