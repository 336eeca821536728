package providerstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

// FileStore — статическая конфигурация провайдеров из JSON-файла.
// Читается один раз при старте процесса, дальше только чтение из памяти.
type FileStore struct {
	providers []domain.Provider
}

func NewFileStore(path string, logger out.LoggerPort) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("providers file read failed: %w", err)
	}

	var providers []domain.Provider
	if err := json.Unmarshal(data, &providers); err != nil {
		return nil, fmt.Errorf("providers file decode failed: %w", err)
	}

	logger.Info("providers.loaded", out.LogFields{
		"path":  path,
		"count": len(providers),
	})

	return &FileStore{providers: providers}, nil
}

func (s *FileStore) GetAll() []domain.Provider {
	return s.providers
}

func (s *FileStore) GetByID(id string) (*domain.Provider, bool) {
	for i := range s.providers {
		if s.providers[i].ID == id {
			return &s.providers[i], true
		}
	}
	return nil, false
}

func (s *FileStore) GetBySpecialty(specialty string) []domain.Provider {
	matched := make([]domain.Provider, 0)
	for _, provider := range s.providers {
		if provider.Specialty == specialty {
			matched = append(matched, provider)
		}
	}
	return matched
}
