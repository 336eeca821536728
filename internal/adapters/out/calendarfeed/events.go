package calendarfeed

import (
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
	"github.com/arbutus/availability-aggregator/internal/utils"
)

// parseBusyIntervals разбирает текст фида в занятые интервалы целевого дня.
// Некорректный фид дает ноль интервалов: парсинг никогда не роняет генерацию.
func parseBusyIntervals(body string, date time.Time, logger out.LoggerPort) []domain.BusyInterval {
	cal, err := ics.ParseCalendar(strings.NewReader(body))
	if err != nil {
		logger.Warn("ical.parse_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil
	}

	dayStart, dayEnd := utils.DayWindow(date)

	var busy []domain.BusyInterval

	for _, event := range cal.Events() {
		start, end, ok := eventBounds(event)
		if !ok {
			continue
		}

		rruleProp := event.GetProperty(ics.ComponentPropertyRrule)
		if rruleProp == nil || rruleProp.Value == "" {
			// Одиночное событие: берем при пересечении с окном дня
			if !end.Before(dayStart) && !start.After(dayEnd) {
				busy = append(busy, domain.BusyInterval{Start: start, End: end})
			}
			continue
		}

		busy = append(busy, expandRecurring(event, rruleProp.Value, start, end.Sub(start), dayStart, dayEnd, logger)...)
	}

	return busy
}

// expandRecurring итерирует вхождения повторяющегося события в хронологическом
// порядке и останавливается, как только начало вхождения уходит за конец дня.
func expandRecurring(event *ics.VEvent, rawRRule string, start time.Time, duration time.Duration, dayStart, dayEnd time.Time, logger out.LoggerPort) []domain.BusyInterval {
	r, err := rrule.StrToRRule(rawRRule)
	if err != nil {
		logger.Warn("ical.rrule_parse_failed", out.LogFields{
			"rrule": rawRRule,
			"error": err.Error(),
		})
		return nil
	}
	r.DTStart(start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range exDates(event, start.Location()) {
		set.ExDate(ex)
	}

	var busy []domain.BusyInterval

	next := set.Iterator()
	for {
		occStart, ok := next()
		if !ok {
			break
		}
		if occStart.After(dayEnd) {
			break
		}
		occEnd := occStart.Add(duration)
		if !occEnd.Before(dayStart) {
			busy = append(busy, domain.BusyInterval{Start: occStart, End: occEnd})
		}
	}

	return busy
}

// eventBounds достает DTSTART/DTEND события, с учетом событий на весь день.
// При отсутствии DTEND длительность считается нулевой.
func eventBounds(event *ics.VEvent) (time.Time, time.Time, bool) {
	start, err := event.GetStartAt()
	if err != nil {
		start, err = event.GetAllDayStartAt()
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
	}

	end, err := event.GetEndAt()
	if err != nil {
		end, err = event.GetAllDayEndAt()
		if err != nil {
			end = start
		}
	}

	return start, end, true
}

// exDates собирает даты-исключения EXDATE в таймзоне начала события.
// Поддерживаются базовые формы DATE-TIME (UTC и локальная) и DATE.
func exDates(event *ics.VEvent, loc *time.Location) []time.Time {
	var dates []time.Time

	for _, prop := range event.GetProperties(ics.ComponentPropertyExdate) {
		for _, part := range strings.Split(prop.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseExDate(part, loc); err == nil {
				dates = append(dates, t.In(loc))
			}
		}
	}

	return dates
}

func parseExDate(v string, loc *time.Location) (time.Time, error) {
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, loc)
	}
	return time.ParseInLocation("20060102", v, loc)
}
