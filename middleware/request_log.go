// middleware/request_log.go
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDLocal is the fiber.Locals key holding the request id.
const RequestIDLocal = "requestid"

// RequestID tags every request with an X-Request-ID, reusing the caller's if present.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: RequestIDLocal,
	})
}

// RequestLogger logs one line per request once the handler chain has finished.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
			"ip", c.IP(),
		}
		if id, ok := c.Locals(RequestIDLocal).(string); ok {
			fields = append(fields, "request_id", id)
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Errorw("[HTTP] request failed", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warnw("[HTTP] request rejected", fields...)
		default:
			log.Infow("[HTTP] request served", fields...)
		}
		return err
	}
}
