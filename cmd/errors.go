// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	apperrors "vagas/cli/internal/errors"
)

// notified reports whether err came out of an account operation, which
// presents its own notification before returning.
func notified(err error) bool {
	return apperrors.KindOf(err) != ""
}
