package appointment

import (
	"context"
	"time"

	"github.com/birdchime/appointment-api/internal/cache"
	domain "github.com/birdchime/appointment-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	loc   *time.Location
}

func NewGetAvailability(
	repo domain.Repository,
	availabilityCache *cache.AvailabilityCache,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: availabilityCache,
		loc:   loc,
	}
}

// Execute produces the slot grid for [rangeStart, rangeEnd), marking slots
// taken by existing appointments. Results are cached per range for a short
// TTL; writes flush the cache.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	rangeStart time.Time,
	rangeEnd time.Time,
) ([]domain.TimeSlot, error) {

	if slots, ok := uc.cache.Get(ctx, rangeStart, rangeEnd); ok {
		return slots, nil
	}

	existing, err := uc.repo.FindInRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	slots := domain.GenerateSlots(rangeStart, rangeEnd, uc.loc, existing)

	uc.cache.Set(ctx, rangeStart, rangeEnd, slots)

	return slots, nil
}
