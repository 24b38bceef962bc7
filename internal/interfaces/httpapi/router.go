// Package httpapi expone el backend de demostración por HTTP con el
// mismo contrato que el script publicado: POST con el sobre
// {action, ...params, token} en el cuerpo, respuesta JSON con success.
package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/pasteleria-pos/internal/transport"
	"github.com/jhoicas/pasteleria-pos/pkg/logger"
)

// NewApp construye la aplicación fiber sobre el manejador dado.
func NewApp(handler transport.Handler, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "pasteleria-pos-mockserver",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// El cliente manda el cuerpo como text/plain para evitar el
	// preflight CORS; por eso se lee crudo y no con BodyParser.
	app.Post("/api", func(c *fiber.Ctx) error {
		resp, err := handler.DoPost(c.UserContext(), string(c.Body()))
		if err != nil {
			log.Error().Err(err).Msg("error procesando la petición")
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"success": false, "error": "error interno del servidor"})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(resp)
	})

	return app
}
