package impl

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
)

// failureForReason classifies a policy denial so the delivery layer can pick a status code.
func failureForReason(reason string) *domainerrors.BaseError {
	switch reason {
	case policy.ReasonNotAuthenticated:
		return domainerrors.ErrUnauthorized
	case policy.ReasonAdminOnly:
		return domainerrors.ErrForbidden
	case policy.ReasonNoAdministrator:
		return domainerrors.ErrNoAdministrator
	case policy.ReasonAdminExists:
		return domainerrors.ErrAdminAlreadyExists
	case policy.ReasonAccountLocked:
		return domainerrors.ErrAccountLocked
	case policy.ReasonProfileNotFound:
		return domainerrors.ErrProfileNotFound
	case policy.ReasonPendingApproval, policy.ReasonUnsupportedRole:
		return domainerrors.ErrLoginNotAllowed
	case policy.ReasonNotApprovalRequest:
		return domainerrors.ErrInvalidRequestType
	case policy.ReasonAlreadyReviewed:
		return domainerrors.ErrRequestNotReviewable
	case policy.ReasonMissingIdentity:
		return domainerrors.ErrValidationFailed
	}

	if strings.Contains(reason, "already approved") {
		return domainerrors.ErrProfileAlreadyApproved
	}

	return domainerrors.ErrConflict
}
