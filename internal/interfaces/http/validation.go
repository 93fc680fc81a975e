package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/domain/money"
)

// validate instancia compartida; validator cachea la metadata de cada struct.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "money", func(fl validator.FieldLevel) bool {
		return money.Valid(fl.Field().String())
	})
	mustRegister(v, "money_or_empty", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || money.Valid(s)
	})
	return v
}

// mustRegister falla al arrancar si el tag no se puede registrar; sin él los
// montos quedarían sin validar.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registrar validación %q: %v", tag, err))
	}
}

// bindJSON parsea el cuerpo y valida los tags. Si falla, ya escribió la
// respuesta 400 y devuelve ok=false.
func bindJSON(c *fiber.Ctx, out any) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if resp := validationErrors(out); resp != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	return true, nil
}

func validationErrors(in any) *dto.ErrorResponse {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	}
	details := make([]dto.FieldError, 0, len(verrs))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, dto.FieldError{Field: fe.Field(), Rule: fe.Tag()})
		fields = append(fields, fe.Field())
	}
	return &dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "campos inválidos: " + strings.Join(fields, ", "),
		Details: details,
	}
}
