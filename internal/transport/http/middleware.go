package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/melusi-muna/login-register-forms/internal/logging"
	"github.com/melusi-muna/login-register-forms/internal/services"
)

const requestIDKey = "request_id"

// RegisterMiddlewares attaches panic recovery, request IDs and access logging.
func RegisterMiddlewares(app *fiber.App, log logging.Logger, timeout time.Duration) {
	app.Use(recover.New())
	app.Use(requestIDMiddleware())
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(requestLogger(log))
}

func requestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(requestIDKey, id)
		return c.Next()
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func requestLogger(log logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = http.StatusInternalServerError
		}

		log.Info(c.UserContext(), "http request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"request_id", c.Locals(requestIDKey),
			"duration", time.Since(start).String(),
		)
		return err
	}
}

// errorHandler renders every error as {"error": {"code", "message"}}.
// Infrastructure failures get the generic user message.
func errorHandler(log logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := http.StatusInternalServerError
		msg := services.UserMessage(err)

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code, msg = fe.Code, fe.Message
		} else {
			log.Error(c.UserContext(), "request failed",
				"path", c.Path(),
				"request_id", c.Locals(requestIDKey),
				"error", err,
			)
		}

		return c.Status(code).JSON(fiber.Map{"error": fiber.Map{
			"code":    code,
			"message": msg,
		}})
	}
}
