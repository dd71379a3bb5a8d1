package appointment

import (
	"context"
	"time"

	"github.com/birdchime/appointment-api/internal/models"
)

type Repository interface {
	// -------- Read --------
	FindAll(
		ctx context.Context,
	) ([]models.Appointment, error)

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	FindInRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	FindOverlapping(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (*models.Appointment, error)

	// -------- Write --------

	// CreateReserved performs the serializable check-and-insert: within one
	// transaction it locks any overlapping rows, fails with ErrTimeConflict
	// when one exists, and inserts otherwise.
	CreateReserved(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteByID(
		ctx context.Context,
		id uint,
	) error
}
