package service

import (
	"errors"
	"strings"

	apperrors "governance-portal-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Principal is the authenticated caller of an operation
type Principal struct {
	UserID      uuid.UUID
	Email       string
	DisplayName string
}

// Name is how the principal appears in audit trails: the display name, else the email
func (p *Principal) Name() string {
	if name := strings.TrimSpace(p.DisplayName); name != "" {
		return name
	}
	return p.Email
}

// storeError classifies an error coming back from the directory store. Errors that
// already carry a kind pass through, a missing row becomes notFound when one is given,
// and anything else is reported as the store being unavailable.
func storeError(op string, err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case isClassified(err):
		return err
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	default:
		return apperrors.NewUnavailableError(op, err)
	}
}

func isClassified(err error) bool {
	return apperrors.IsNotFound(err) ||
		apperrors.IsValidation(err) ||
		apperrors.IsConflict(err) ||
		apperrors.IsAuthentication(err) ||
		apperrors.IsAuthorization(err) ||
		apperrors.IsUnavailable(err)
}

// validationError turns the first failed validator rule into a ValidationError naming the field
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), "failed on the '"+fe.Tag()+"' rule")
	}
	return apperrors.NewValidationError("request", err.Error())
}
