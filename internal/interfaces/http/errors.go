package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	"github.com/jhoicas/inventario-planchas/internal/domain"
)

// Códigos de error de la API.
const (
	CodeValidation      = "VALIDATION"
	CodeNotFound        = "NOT_FOUND"
	CodeForbidden       = "FORBIDDEN"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeCascadeRequired = "CASCADE_REQUIRED"
	CodeDuplicate       = "DUPLICATE"
	CodeInternal        = "INTERNAL"
)

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// writeError traduce un error de la capa de aplicación a la respuesta HTTP. Los errores que no
// son de dominio se registran y el cliente solo recibe un aviso genérico.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return errorJSON(c, fiber.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, CodeForbidden, "permiso insuficiente para esta operación")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionExpired):
		return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, "sesión inválida o expirada")
	case errors.Is(err, domain.ErrProductReferenced):
		return errorJSON(c, fiber.StatusConflict, CodeCascadeRequired,
			"el producto tiene movimientos asociados; confirme con cascade=true para eliminarlos también")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return errorJSON(c, fiber.StatusConflict, CodeDuplicate, err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return errorJSON(c, fiber.StatusConflict, CodeDuplicate, err.Error())
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "ocurrió un error, intente de nuevo")
}

func notFound(c *fiber.Ctx, message string) error {
	return errorJSON(c, fiber.StatusNotFound, CodeNotFound, message)
}

func invalidBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "cuerpo inválido")
}
