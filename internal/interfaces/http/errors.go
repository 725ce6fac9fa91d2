package http

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/pkg/logger"
)

// ErrorHandler traduce la taxonomía de errores de dominio a respuestas
// HTTP {error, message}. Cualquier error fuera de la taxonomía se registra
// y responde 500 sin filtrar detalle interno.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var de *domain.Error
		if errors.As(err, &de) {
			if de.Kind == domain.KindInternal {
				log.Error().Err(de.Err).Str("path", c.Path()).Msg("error interno")
			}
			return c.Status(de.Status).JSON(dto.ErrorResponse{Error: string(de.Kind), Message: de.Message})
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: "error", Message: fe.Message})
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("error no clasificado")
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: string(domain.KindInternal), Message: "internal server error"})
	}
}

// parseBody decodifica el cuerpo JSON en dst. Un cuerpo vacío deja dst en
// cero (los validadores reportan los campos faltantes). Un campo con tipo
// incorrecto produce el mensaje 422 propio del endpoint vía typeErrMsg; un
// cuerpo indecodificable produce el 400 genérico de formato.
func parseBody(c *fiber.Ctx, dst any, typeErrMsg func(field string) string) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Field != "" && typeErrMsg != nil {
			if msg := typeErrMsg(ute.Field); msg != "" {
				return domain.InvalidInput(msg)
			}
		}
		return domain.BadRequest("Please follow endpoint JSON data format")
	}
	return nil
}
