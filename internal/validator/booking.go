package validator

import (
	"time"

	"github.com/go-playground/validator/v10"

	"fleetshare/internal/entities"
	apperrors "fleetshare/internal/errors"
	"fleetshare/internal/fleet"
)

// BookingValidator checks booking drafts field by field, in a fixed order,
// so the first reported problem is always the same for the same input.
type BookingValidator struct {
	validate *validator.Validate
}

func NewBookingValidator() *BookingValidator {
	v := validator.New()
	// Always registered on a fresh instance, cannot collide.
	_ = v.RegisterValidation("dateonly", validateDateOnly)
	return &BookingValidator{validate: v}
}

// ValidateDraft runs the intake preconditions in order: vehicle, date,
// passengers, requester, destination. It returns the first failure.
func (bv *BookingValidator) ValidateDraft(draft entities.BookingDraft, roster []entities.Vehicle) *apperrors.ValidationError {
	if err := bv.validate.Var(draft.VehicleID, "required"); err != nil {
		return apperrors.NewValidationError("vehicleId", "vehicle is required")
	}
	if _, ok := fleet.ByID(roster, draft.VehicleID); !ok {
		return apperrors.NewValidationError("vehicleId", "unknown vehicle '"+draft.VehicleID+"'")
	}
	if err := bv.validate.Var(draft.Date, "required"); err != nil {
		return apperrors.NewValidationError("date", "date is required")
	}
	if err := bv.validate.Var(draft.Date, "dateonly"); err != nil {
		return apperrors.NewValidationError("date", "date must be a valid YYYY-MM-DD calendar date")
	}
	if err := bv.validate.Var(draft.Passengers, "gte=1,lte=10"); err != nil {
		return apperrors.NewValidationError("passengers", "passengers must be between 1 and 10")
	}
	if err := bv.validate.Var(draft.UserName, "required"); err != nil {
		return apperrors.NewValidationError("userName", "requester name is required")
	}
	if err := bv.validate.Var(draft.Destination, "required"); err != nil {
		return apperrors.NewValidationError("destination", "destination is required")
	}
	return nil
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}
