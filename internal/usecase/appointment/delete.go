package appointment

import (
	"context"

	"github.com/birdchime/appointment-api/internal/audit"
	"github.com/birdchime/appointment-api/internal/cache"
	domain "github.com/birdchime/appointment-api/internal/domain/appointment"
	"github.com/birdchime/appointment-api/internal/httperr"
)

const CodeNotFound = "appointment_not_found"

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewDeleteAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availabilityCache *cache.AvailabilityCache,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: auditDispatcher,
		cache: availabilityCache,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {

	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ap == nil {
		return httperr.ErrBusinessMsg(CodeNotFound, "Appointment not found.")
	}

	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	uc.cache.Flush(ctx)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
