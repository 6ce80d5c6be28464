package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "ops-dashboard/pkg/errors"
)

// Validator оборачивает go-playground/validator под контракт echo.Validator
// и переводит ошибки полей в apperrors.ValidationError.
type Validator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.ErrBadRequest
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fmt.Sprintf("не прошло проверку '%s'", fe.Tag())
	}
	return apperrors.NewValidationError(fields)
}
