package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/birdchime/appointment-api/internal/audit"
	"github.com/birdchime/appointment-api/internal/cache"
	domain "github.com/birdchime/appointment-api/internal/domain/appointment"
	"github.com/birdchime/appointment-api/internal/httperr"
	"github.com/birdchime/appointment-api/internal/models"
	"github.com/birdchime/appointment-api/internal/timezone"
	"github.com/birdchime/appointment-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	StartAt string `json:"startAt" validate:"required"`
	EndAt   string `json:"endAt" validate:"required"`
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Reason  string `json:"reason" validate:"omitempty,max=200"`
}

const CodeValidation = "validation_error"

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache

	validate *validator.Validate
	loc      *time.Location

	checkEmailDomain bool

	now func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availabilityCache *cache.AvailabilityCache,
	validate *validator.Validate,
	loc *time.Location,
	checkEmailDomain bool,
) *CreateAppointment {
	return &CreateAppointment{
		repo:             repo,
		audit:            auditDispatcher,
		cache:            availabilityCache,
		validate:         validate,
		loc:              loc,
		checkEmailDomain: checkEmailDomain,
		now:              timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the booking gates in fixed order: payload shape, temporal
// policy (past, hours, weekday, length), conflict, then the reserved insert.
// The first failing gate is the single reported error.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Payload shape
	// --------------------------------------------------
	if err := uc.validate.Struct(in); err != nil {
		return nil, httperr.ErrBusinessMsg(CodeValidation, validationMessage(err))
	}

	start, err := time.Parse(time.RFC3339, in.StartAt)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(CodeValidation, "startAt must be a valid ISO timestamp")
	}
	end, err := time.Parse(time.RFC3339, in.EndAt)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(CodeValidation, "endAt must be a valid ISO timestamp")
	}

	start = start.In(uc.loc)
	end = end.In(uc.loc)

	if uc.checkEmailDomain && !validators.IsEmailDomainValid(in.Email) {
		return nil, httperr.ErrBusinessMsg(CodeValidation, "email domain does not accept mail")
	}

	// --------------------------------------------------
	// 2. Temporal policy
	// --------------------------------------------------
	if err := domain.ValidateBookingTime(uc.now().In(uc.loc), start, end); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Conflict check
	// --------------------------------------------------
	overlap, err := uc.repo.FindOverlapping(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if overlap != nil {
		uc.dispatchConflict(start, end)
		return nil, domain.ErrTimeConflict
	}

	// --------------------------------------------------
	// 4. Reserved insert (re-checks under lock)
	// --------------------------------------------------
	ap := &models.Appointment{
		StartAt: start.UTC(),
		EndAt:   end.UTC(),
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Reason:  in.Reason,
	}

	if err := uc.repo.CreateReserved(ctx, ap); err != nil {
		if httperr.IsBusiness(err, domain.CodeTimeConflict) {
			uc.dispatchConflict(start, end)
		}
		return nil, err
	}

	uc.cache.Flush(ctx)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) dispatchConflict(start, end time.Time) {
	uc.audit.Dispatch(audit.Event{
		Action: "appointment_conflict",
		Entity: "appointment",
		Metadata: map[string]any{
			"start": start,
			"end":   end,
		},
	})
}

// validationMessage joins every field error into one reason string, the way
// the API has always reported schema failures.
func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return "invalid request body"
	}

	msgs := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		msgs = append(msgs, fieldErrorMessage(fe))
	}
	return strings.Join(msgs, ", ")
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "min":
		return field + " must not be empty"
	default:
		return field + " is invalid"
	}
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "StartAt":
		return "startAt"
	case "EndAt":
		return "endAt"
	default:
		return strings.ToLower(fe.Field())
	}
}
