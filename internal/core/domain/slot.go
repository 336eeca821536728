package domain

import "time"

// TimeSlot — кандидат на запись фиксированной длительности.
// Инвариант: Start < End. Моменты абсолютные, локализация — на стороне отображения.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BusyInterval — занятый интервал, полученный из событий календаря.
// Семантически противоположен TimeSlot: недоступность, а не доступность.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps проверяет строгое пересечение полуоткрытых интервалов:
// занятый интервал блокирует слот, если busy.Start < slot.End && busy.End > slot.Start.
func (s TimeSlot) Overlaps(busy BusyInterval) bool {
	return busy.Start.Before(s.End) && busy.End.After(s.Start)
}
