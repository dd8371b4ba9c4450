// Package validator aplica las etiquetas `validate:"..."` de los DTOs con
// go-playground/validator y añade las reglas brasileñas cpf y cnpj.
package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/office-api/pkg/brdoc"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nombres de campo según la etiqueta json para que los mensajes coincidan con el payload.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return brdoc.ValidateCPF(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return brdoc.ValidateCNPJ(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Error agrupa los mensajes de validación de un payload.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Struct valida s y devuelve *Error con un mensaje por campo inválido.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Messages: make([]string, 0, len(verrs))}
	for _, fe := range verrs {
		out.Messages = append(out.Messages, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return field + " must have at least " + param + " items"
		}
		return field + " must be at least " + param + " characters"
	case "max":
		return field + " must be at most " + param + " characters"
	case "len":
		return field + " must be exactly " + param + " characters"
	case "email":
		return field + " must be a valid email"
	case "cpf":
		return field + " must be a valid CPF"
	case "cnpj":
		return field + " must be a valid CNPJ"
	case "uuid":
		return field + " must be a valid UUID"
	case "ne", "ne_ignore_case":
		return field + " cannot be '" + param + "'"
	default:
		return field + " is invalid"
	}
}
