package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.BrazilianPortuguese)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return titleCaser.String(s)
}

// MapValidationError converts gin binding errors into a 422 AppError with one
// message per offending field.
func MapValidationError(err error) *AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return New(CodeValidationError, "Dados inválidos.", http.StatusUnprocessableEntity)
	}

	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		name := formatFieldName(e.Field())
		switch e.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s é obrigatório", name))
		case "email":
			fields = append(fields, fmt.Sprintf("%s deve ser um e-mail válido", name))
		case "min":
			fields = append(fields, fmt.Sprintf("%s deve ter pelo menos %s caracteres", name, e.Param()))
		case "max":
			fields = append(fields, fmt.Sprintf("%s deve ter no máximo %s caracteres", name, e.Param()))
		case "oneof":
			fields = append(fields, fmt.Sprintf("%s deve ser um de: %s", name, e.Param()))
		default:
			fields = append(fields, fmt.Sprintf("%s é inválido", name))
		}
	}

	return &AppError{
		Code:       CodeValidationError,
		Message:    "Dados inválidos.",
		HTTPStatus: http.StatusUnprocessableEntity,
		Fields:     fields,
	}
}
