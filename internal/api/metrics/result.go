package metrics

import (
	"errors"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// Result classifies an operation outcome for the result label. Domain
// failures caused by the caller count as rejected.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict):
		return ResultRejected
	default:
		return ResultError
	}
}
