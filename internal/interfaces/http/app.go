package http

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/pkg/logger"
)

// AppConfig opciones del servidor fiber.
type AppConfig struct {
	Name string
}

// NewApp crea la app fiber con codec go-json, request id, log de peticiones y
// recover. Cualquier error que escape de un handler termina en la misma forma
// JSON dto.ErrorResponse.
func NewApp(cfg AppConfig, log *logger.Logger) *fiber.App {
	httpLog := log.WithComponent("http")
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: ErrorHandler(httpLog),
	})
	app.Use(requestid.New())
	app.Use(RequestLogger(httpLog))
	app.Use(recover.New())
	return app
}

// ErrorHandler responde 500 genérico ante errores no clasificados y registra
// la causa; los *fiber.Error (ruta inexistente, método no permitido) conservan
// su código.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: httpCode(fe.Code), Message: fe.Message})
		}
		log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "error interno del servidor",
		})
	}
}

func httpCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return "INVALID_BODY"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	}
	return "ERROR"
}

// RequestLogger registra cada petición con método, ruta, status, latencia y,
// si pasó por AuthMiddleware, el usuario.
// Si la cadena devuelve error, lo resuelve aquí con el ErrorHandler de la app
// para que el status registrado sea el que recibe el cliente.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}
		ev = ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID))
		// operador autenticado; vacío en login, /health o con auth deshabilitada.
		if user := GetUsername(c); user != "" {
			ev = ev.Str("user", user)
		}
		ev.Msg("request")
		return nil
	}
}
