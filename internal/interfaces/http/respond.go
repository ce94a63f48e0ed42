package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zapateria/bodega-api/internal/application/dto"
	"github.com/zapateria/bodega-api/internal/domain"
	"github.com/zapateria/bodega-api/pkg/logger"
)

// respondError mapea un error de aplicación a la respuesta HTTP. La validación
// devuelve su mensaje tal cual; el resto responde mensajes genéricos y el
// detalle queda solo en el log.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(ve.Msg))
	case errors.Is(err, domain.ErrUsernameRegistrado):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("El usuario ya está registrado."))
	case errors.Is(err, domain.ErrUsuarioNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("Usuario no encontrado."))
	case errors.Is(err, domain.ErrZapatoNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("Zapato no encontrado"))
	case errors.Is(err, domain.ErrServicioEtiquetas):
		log.Error().Err(err).Msg("servicio de etiquetas no disponible")
		return c.Status(fiber.StatusBadGateway).JSON(dto.Error("El servicio de etiquetas no está disponible."))
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Error interno del servidor"))
	}
}

// parseCID acepta el cid como número o como texto numérico. Devuelve false
// cuando falta, es cero o no es un entero.
func parseCID(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		cid := int64(n)
		if float64(cid) != n || cid == 0 {
			return 0, false
		}
		return cid, true
	case string:
		cid, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil || cid == 0 {
			return 0, false
		}
		return cid, true
	default:
		return 0, false
	}
}
