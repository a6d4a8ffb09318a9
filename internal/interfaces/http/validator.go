package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los mensajes usan el nombre con que el cliente envía el campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return strings.ToLower(f.Name)
	})
	return v
}

// validateStruct valida in y devuelve los mensajes en un solo texto.
func validateStruct(in any) error {
	if err := validate.Struct(in); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError convierte un error de validación en un mensaje legible.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " es requerido"
	case "email":
		return field + " debe ser un email válido"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s debe ser al menos %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s admite como máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s debe ser como máximo %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s debe tener el formato AAAA-MM-DD", field)
	default:
		return fmt.Sprintf("%s no es válido (%s)", field, fe.Tag())
	}
}

// parseBody lee el cuerpo JSON y lo valida. Si falla, ya respondió y devuelve false.
func parseBody(c *fiber.Ctx, in any) (bool, error) {
	if err := c.BodyParser(in); err != nil {
		return false, invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return false, errorJSON(c, fiber.StatusBadRequest, CodeValidation, err.Error())
	}
	return true, nil
}

// parseQuery lee los parámetros de consulta y los valida. Si falla, ya respondió y devuelve false.
func parseQuery(c *fiber.Ctx, in any) (bool, error) {
	if err := c.QueryParser(in); err != nil {
		return false, errorJSON(c, fiber.StatusBadRequest, CodeValidation, "parámetros inválidos")
	}
	if err := validateStruct(in); err != nil {
		return false, errorJSON(c, fiber.StatusBadRequest, CodeValidation, err.Error())
	}
	return true, nil
}
