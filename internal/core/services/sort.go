package services

import (
	"time"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
)

type resultSlice []domain.ProviderAvailability

// earliestSlot возвращает момент самого раннего слота результата.
func earliestSlot(result domain.ProviderAvailability) time.Time {
	earliest := result.Slots[0].Start
	for _, slot := range result.Slots[1:] {
		if slot.Start.Before(earliest) {
			earliest = slot.Start
		}
	}
	return earliest
}

// quickSort сортирует результаты по возрастанию самого раннего слота.
func (s resultSlice) quickSort() resultSlice {
	if len(s) < 2 {
		return s
	}

	// Выбираем опорный элемент
	pivot := earliestSlot(s[len(s)/2])

	less := resultSlice{}
	equal := resultSlice{}
	greater := resultSlice{}

	for _, result := range s {
		earliest := earliestSlot(result)
		if earliest.Before(pivot) {
			less = append(less, result)
		} else if earliest.Equal(pivot) {
			equal = append(equal, result)
		} else {
			greater = append(greater, result)
		}
	}

	return append(append(less.quickSort(), equal...), greater.quickSort()...)
}

// partitionResults делит провайдеров на "есть подходящие слоты" и "нет":
// первые сортируются по самому раннему слоту, вторые идут следом
// в исходном порядке.
func partitionResults(results []domain.ProviderAvailability) []domain.ProviderAvailability {
	withSlots := resultSlice{}
	withNoSlots := make([]domain.ProviderAvailability, 0)

	for _, result := range results {
		if len(result.Slots) > 0 {
			withSlots = append(withSlots, result)
		} else {
			withNoSlots = append(withNoSlots, result)
		}
	}

	return append(withSlots.quickSort(), withNoSlots...)
}
