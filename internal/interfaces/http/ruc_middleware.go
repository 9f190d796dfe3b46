package http

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/pkg/logger"
	"github.com/jhoicas/contasunat/pkg/sunat"
)

// LocalRUC clave en c.Locals con el RUC validado de la ruta.
const LocalRUC = "ruc"

var rucPattern = regexp.MustCompile(`^\d{11}$`)

// RequireRUC valida el parámetro :ruc de la ruta.
//
// Comportamiento:
//   - 400 Bad Request → el RUC no tiene 11 dígitos.
//   - Dígito verificador o prefijo inválido → solo advertencia en el log; la petición continúa
//     (hay contribuyentes migrados cuyos RUC no cumplen el módulo 11).
func RequireRUC(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		ruc := c.Params("ruc")
		if !rucPattern.MatchString(ruc) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "INVALID_RUC",
				Message: "el RUC debe tener 11 dígitos",
			})
		}
		if err := sunat.ValidateRUC(ruc); err != nil {
			log.Warn().Err(err).Str("ruc", ruc).Str("path", c.Path()).Msg("RUC no supera la validación")
		}
		c.Locals(LocalRUC, ruc)
		return c.Next()
	}
}

// GetRUC devuelve el RUC validado por RequireRUC.
func GetRUC(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalRUC).(string); ok {
		return v
	}
	return ""
}
