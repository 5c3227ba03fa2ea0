package utils

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	cpfRegex = regexp.MustCompile(`^\d{11}$`)
)

func init() {
	validate = validator.New()
	// Report wire names so validation messages match what the API expects.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("cpf", validateCPF)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCPF(fl validator.FieldLevel) bool {
	digits := strings.NewReplacer(".", "", "-", "").Replace(fl.Field().String())
	return cpfRegex.MatchString(digits)
}
