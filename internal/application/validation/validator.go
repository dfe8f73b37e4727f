// Package validation valida los DTO de entrada con go-playground/validator y traduce
// el primer fallo a un domain.ValidationError (campo con su nombre JSON).
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/ordenes-api/internal/domain"
)

// Validator envuelve validator/v10 con las reglas propias registradas.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con la regla "strongpwd" y nombres de campo JSON.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	return &Validator{v: v}
}

// Struct valida in; devuelve nil o un error que envuelve domain.ErrInvalidInput.
func (val *Validator) Struct(in any) error {
	err := val.v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidation("", err.Error())
	}
	fe := verrs[0]
	return domain.NewValidation(fieldPath(fe), reason(fe))
}

// IsStrongPassword: al menos 8 caracteres con mayúscula, minúscula, dígito y símbolo.
func IsStrongPassword(s string) bool {
	if len([]rune(s)) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// fieldPath quita el nombre del struct raíz: "OrderRequest.detalles[0].id_producto" -> "detalles[0].id_producto".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un correo válido"
	case "e164":
		return "debe ser un número en formato internacional (+573001234567)"
	case "strongpwd":
		return "debe tener al menos 8 caracteres e incluir mayúscula, minúscula, número y símbolo"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "gt":
		return "debe ser mayor a " + fe.Param()
	case "gte", "min":
		return "debe ser al menos " + fe.Param()
	case "lte", "max":
		return "no puede superar " + fe.Param()
	default:
		return fmt.Sprintf("no cumple la regla %q", fe.Tag())
	}
}
