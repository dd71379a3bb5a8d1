package appointment

import (
	"context"

	domain "github.com/birdchime/appointment-api/internal/domain/appointment"
	"github.com/birdchime/appointment-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns every appointment ordered ascending by start time.
func (uc *ListAppointments) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.FindAll(ctx)
}
