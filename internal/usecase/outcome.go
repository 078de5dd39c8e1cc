// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
//
// Workflow use cases report business outcomes through Outcome instead of Go
// errors: a rejected rule, a missing entity and a repository failure all come
// back as Success=false with a human-readable Message.
package usecase

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
)

// Outcome is the envelope every workflow use case returns.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Error carries the original cause for diagnostics. It is not meant for display.
	Error string `json:"error,omitempty"`
	// Failure classifies a failed outcome so the delivery layer can pick a status code.
	Failure domainerrors.AppError `json:"-"`
}

// Succeeded builds a successful outcome.
func Succeeded(message string) Outcome {
	return Outcome{Success: true, Message: message}
}

// Rejected builds a failed outcome for an expected business-rule rejection.
func Rejected(failure *domainerrors.BaseError, message string) Outcome {
	if message == "" {
		message = failure.Message()
	}

	return Outcome{
		Success: false,
		Message: message,
		Failure: failure.WithMessage(message),
	}
}

// FromError converts an error raised below the use case boundary.
// Domain errors keep their own message; anything else is relabelled with
// generic and the original text is preserved in Error.
func FromError(err error, generic *domainerrors.BaseError) Outcome {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if _, isDB := appErr.(*domainerrors.DatabaseExecuteError); !isDB {
			return Outcome{
				Success: false,
				Message: appErr.Message(),
				Error:   err.Error(),
				Failure: appErr,
			}
		}
	}

	return Outcome{
		Success: false,
		Message: generic.Message(),
		Error:   err.Error(),
		Failure: generic,
	}
}
