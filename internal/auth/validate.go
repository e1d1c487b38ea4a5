// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "vagas/cli/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type signInInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type createInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// validateInput checks required fields and returns a Validation error naming
// every missing field.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(apperrors.Validation, "invalid input", err)
	}
	var missing []string
	for _, fe := range verrs {
		missing = append(missing, strings.ToLower(fe.Field()))
	}
	return apperrors.New(apperrors.Validation, fmt.Sprintf("%s required", strings.Join(missing, ", ")))
}
