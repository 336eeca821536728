package out

import (
	"context"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
)

// GeocoderPort — один внешний вызов геокодера, без ретраев.
// nil без ошибки означает "адрес не найден".
type GeocoderPort interface {
	Geocode(ctx context.Context, address string) (*domain.Coordinates, error)
}
