package transits

import (
	"fmt"
	"time"

	"github.com/admin/tg-bots/astro-transits/internal/domain"
)

// Clock источник текущего времени
type Clock func() time.Time

// Resolver фиксирует момент наблюдения "сейчас" в часовом поясе локации
type Resolver struct {
	place domain.Location
	now   Clock
}

func NewResolver(place domain.Location, now Clock) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{
		place: place,
		now:   now,
	}
}

// Place точка наблюдения
func (r *Resolver) Place() domain.Location {
	return r.place
}

// Resolve возвращает текущий момент по часам локации
func (r *Resolver) Resolve() (domain.TransitMoment, error) {
	loc, err := time.LoadLocation(r.place.Timezone)
	if err != nil {
		return domain.TransitMoment{}, fmt.Errorf("failed to load timezone %s: %w", r.place.Timezone, err)
	}

	return domain.NewTransitMoment(r.now().In(loc)), nil
}
