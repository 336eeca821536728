package out

import (
	"context"
	"time"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
)

// CalendarFeedPort — генерация слотов из iCal-фида и рабочих часов.
// Ошибки фида не поднимаются наружу: источник деградирует до полной сетки.
type CalendarFeedPort interface {
	GetAvailableSlots(ctx context.Context, provider *domain.Provider, date time.Time) ([]domain.TimeSlot, error)
}

// JanePort — окна записи из прямого API вендора.
// Недоступность вендора возвращается ошибкой: вызывающий откатывается на календарь.
type JanePort interface {
	GetOpenings(ctx context.Context, jane *domain.JaneConfig, date string, numDays int) ([]domain.TimeSlot, error)
}

// MarketplacePort — поиск специалистов и их окон через публичный маркетплейс.
// Оба метода деградируют до пустого результата при сбоях выше по течению.
type MarketplacePort interface {
	SearchPractitioners(ctx context.Context, lat, lng float64, bounds domain.BoundingBox, discipline string, maxResults int) ([]domain.Practitioner, error)
	GetOpenings(ctx context.Context, staffMemberGuid string, locationID int) ([]domain.TimeSlot, error)
}
