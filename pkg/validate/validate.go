// Package validate valida DTOs con go-playground/validator y traduce los fallos a mensajes por campo.
// Reglas propias: slug, rfc (RFC mexicano) y comparaciones sobre decimal.Decimal (dgt, dgte, dplaces).
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once sync.Once
	v    *validator.Validate

	slugRe = regexp.MustCompile(`^[a-z0-9-]{3,}$`)
	// Persona moral (3 letras) o física (4), fecha AAMMDD y homoclave.
	rfcRe = regexp.MustCompile(`^[A-Z&Ñ]{3,4}[0-9]{6}[A-Z0-9]{3}$`)
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		// decimal.Decimal se valida como su representación en texto.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("rfc", func(fl validator.FieldLevel) bool {
			return rfcRe.MatchString(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
		})
		_ = v.RegisterValidation("dgt", decimalCompare(func(d, p decimal.Decimal) bool { return d.GreaterThan(p) }))
		_ = v.RegisterValidation("dgte", decimalCompare(func(d, p decimal.Decimal) bool { return d.GreaterThanOrEqual(p) }))
		_ = v.RegisterValidation("dplaces", func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			if err != nil {
				return false
			}
			n, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return d.Equal(d.Round(int32(n)))
		})
	})
	return v
}

func decimalCompare(cmp func(d, param decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		p, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(d, p)
	}
}

// Struct valida s y devuelve mensajes por campo (nil si es válido).
// Las claves usan el nombre JSON y la ruta para slices: items[0].quantity.
func Struct(s any) map[string]string {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath quita el nombre del struct raíz del namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "uuid":
		return "debe ser un UUID válido"
	case "url":
		return "debe ser una URL válida"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "debe tener al menos " + fe.Param() + " elemento(s)"
		}
		return "debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return "debe tener como máximo " + fe.Param() + " caracteres"
	case "len":
		return "debe tener exactamente " + fe.Param() + " caracteres"
	case "numeric":
		return "debe contener solo dígitos"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "slug":
		return "solo minúsculas, números y guiones (mínimo 3)"
	case "rfc":
		return "RFC inválido"
	case "dgt":
		return "debe ser mayor que " + fe.Param()
	case "dgte":
		return "debe ser mayor o igual a " + fe.Param()
	case "dplaces":
		return "máximo " + fe.Param() + " decimales"
	default:
		return "valor inválido"
	}
}
