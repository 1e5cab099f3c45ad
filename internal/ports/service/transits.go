package service

import (
	"context"

	"github.com/admin/tg-bots/astro-transits/internal/domain"
)

// ITransitService расчёт транзитов на текущий момент
type ITransitService interface {
	GetTransits(ctx context.Context) (*domain.TransitReport, error)
}
