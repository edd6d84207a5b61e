package cli

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

const genericFailure = "Something went wrong. Please try again."

// describeError maps known domain errors to console messages. Unexpected
// errors are logged and reported generically.
func describeError(err error, log zerolog.Logger) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, domain.ErrUserExists):
		return "A user with that email already exists."
	case errors.Is(err, domain.ErrUserNotFound):
		return "User not found."
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "Your session has ended. Please log in again."
	case errors.Is(err, domain.ErrForbidden):
		return "You do not have the privilege to perform this action."
	case errors.Is(err, domain.ErrInvalidInput):
		return sentence(strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": "))
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "Customer profile not found."
	case errors.Is(err, domain.ErrPolicyNotFound):
		return "Policy not found."
	case errors.Is(err, domain.ErrClaimNotFound):
		return "Claim not found."
	case errors.Is(err, domain.ErrInvalidTransition):
		return sentence(err.Error())
	case errors.Is(err, domain.ErrSnapshotNotFound), errors.Is(err, domain.ErrSnapshotCorrupt):
		return "No data found to load."
	}

	log.Error().Err(err).Msg("unhandled error")
	return genericFailure
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToUpper(s[:1]) + s[1:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
