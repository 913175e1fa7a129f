package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseBody decodes and validates a request body. On failure it writes the
// error response itself and reports false, so callers bail with `return nil`.
func parseBody(c *fiber.Ctx, v interface{}) bool {
	if err := c.BodyParser(v); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
		return false
	}

	if err := validate.Struct(v); err != nil {
		fields := make(map[string]string)
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range verrs {
				fields[e.Field()] = e.Tag()
			}
		}
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
		return false
	}

	return true
}
