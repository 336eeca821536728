package utils

import (
	"fmt"
	"time"
)

// Ванкувер: UTC-7 (PDT) с апреля по ноябрь, иначе UTC-8 (PST).
// Упрощенное правило по месяцу UTC, без базы таймзон — переходы DST
// внутри месяца сознательно не учитываются.
func VancouverUTCOffset(t time.Time) int {
	month := t.UTC().Month()
	if month >= time.April && month <= time.November {
		return -7
	}
	return -8
}

// VancouverLocation возвращает фиксированную таймзону для даты по тому же правилу.
func VancouverLocation(t time.Time) *time.Location {
	offset := VancouverUTCOffset(t)
	name := "PST"
	if offset == -7 {
		name = "PDT"
	}
	return time.FixedZone(name, offset*60*60)
}

// VancouverTime возвращает абсолютный момент, соответствующий локальному
// времени hour:minute в Ванкувере для календарного дня date (по UTC-дате).
func VancouverTime(date time.Time, hour, minute int) time.Time {
	d := date.UTC()
	offset := VancouverUTCOffset(date)
	return time.Date(d.Year(), d.Month(), d.Day(), hour-offset, minute, 0, 0, time.UTC)
}

// DayWindow возвращает границы локального дня [00:00:00.000, 23:59:59.999].
func DayWindow(date time.Time) (time.Time, time.Time) {
	start := VancouverTime(date, 0, 0)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// LocalHour возвращает час момента t в локальном времени Ванкувера.
func LocalHour(t time.Time) int {
	return t.In(VancouverLocation(t)).Hour()
}

// LocalDate форматирует момент t как локальную календарную дату YYYY-MM-DD.
func LocalDate(t time.Time) string {
	return t.In(VancouverLocation(t)).Format("2006-01-02")
}

// ParseCivilDate парсит дату без времени YYYY-MM-DD в полночь UTC.
// UTC-дата дальше используется как календарный день для VancouverTime.
func ParseCivilDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse("2006-01-02", str)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
	}
	return parsedDate, nil
}
