package out

import "github.com/arbutus/availability-aggregator/internal/core/domain"

// ProviderStorePort — статическая конфигурация провайдеров.
// Загружается один раз при старте, ядру доступна только на чтение.
type ProviderStorePort interface {
	GetAll() []domain.Provider
	GetByID(id string) (*domain.Provider, bool)
	GetBySpecialty(specialty string) []domain.Provider
}
