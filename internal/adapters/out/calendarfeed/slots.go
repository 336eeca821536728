package calendarfeed

import (
	"time"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/utils"
)

// buildSlots идет по рабочему окну с фиксированным шагом slotDuration.
// Заблокированные слоты отбрасываются, шаг при этом не сдвигается к границе
// занятого интервала — сетка остается равномерной.
func buildSlots(date time.Time, hours *domain.DayHours, slotDuration int, busy []domain.BusyInterval) []domain.TimeSlot {
	cursor := utils.VancouverTime(date, hours.Start.Hour, hours.Start.Minute)
	workEnd := utils.VancouverTime(date, hours.End.Hour, hours.End.Minute)
	step := time.Duration(slotDuration) * time.Minute

	slots := make([]domain.TimeSlot, 0)

	for !cursor.Add(step).After(workEnd) {
		slot := domain.TimeSlot{Start: cursor, End: cursor.Add(step)}

		blocked := false
		for _, interval := range busy {
			if slot.Overlaps(interval) {
				blocked = true
				break
			}
		}

		if !blocked {
			slots = append(slots, slot)
		}

		cursor = cursor.Add(step)
	}

	return slots
}
