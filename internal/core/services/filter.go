package services

import (
	"time"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/utils"
)

// filterByWindow оставляет слоты, локальный час начала которых попадает
// в именованное окно [start, end). Окно "any" пропускает все.
func filterByWindow(slots []domain.TimeSlot, windowName string) []domain.TimeSlot {
	if windowName == "any" {
		return slots
	}

	window, exists := domain.TimeWindows[windowName]
	if !exists {
		return slots
	}

	filtered := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		hour := utils.LocalHour(slot.Start)
		if hour >= window.Start && hour < window.End {
			filtered = append(filtered, slot)
		}
	}

	return filtered
}

// filterFuture отбрасывает слоты, начало которых не строго в будущем.
func filterFuture(slots []domain.TimeSlot, now time.Time) []domain.TimeSlot {
	filtered := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Start.After(now) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

// filterToLocalDate оставляет слоты, локальная календарная дата которых
// совпадает с запрошенной.
func filterToLocalDate(slots []domain.TimeSlot, dateStr string) []domain.TimeSlot {
	filtered := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if utils.LocalDate(slot.Start) == dateStr {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
