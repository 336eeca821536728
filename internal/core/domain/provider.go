package domain

import (
	"time"

	"github.com/arbutus/availability-aggregator/internal/core/json_types"
)

// DayHours — рабочее окно на один день недели. nil-указатель в WorkingHours означает выходной.
type DayHours struct {
	Start json_types.ClockTime `json:"start"`
	End   json_types.ClockTime `json:"end"`
}

type WorkingHours struct {
	Monday    *DayHours `json:"monday"`
	Tuesday   *DayHours `json:"tuesday"`
	Wednesday *DayHours `json:"wednesday"`
	Thursday  *DayHours `json:"thursday"`
	Friday    *DayHours `json:"friday"`
	Saturday  *DayHours `json:"saturday"`
	Sunday    *DayHours `json:"sunday"`
}

// JaneConfig — прямое подключение к клинике вендора.
type JaneConfig struct {
	Subdomain     string `json:"subdomain"`
	StaffMemberID int    `json:"staffMemberId"`
	TreatmentID   int    `json:"treatmentId"`
	LocationID    int    `json:"locationId"`
}

// MarketplaceConfig — подключение через публичный маркетплейс вендора.
type MarketplaceConfig struct {
	StaffMemberGuid string `json:"staffMemberGuid"`
	LocationID      int    `json:"locationId"`
}

// Provider — статическая конфигурация специалиста. Загружается один раз
// при старте процесса и не изменяется ядром.
type Provider struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Title        string             `json:"title"`
	Specialty    string             `json:"specialty"`
	Rating       float64            `json:"rating"`
	ReviewCount  int                `json:"reviewCount"`
	Neighborhood string             `json:"neighborhood"`
	Lat          float64            `json:"lat"`
	Lng          float64            `json:"lng"`
	Bio          string             `json:"bio"`
	ImageURL     string             `json:"imageUrl"`
	ICalURL      string             `json:"icalUrl"`
	BookingURL   string             `json:"bookingUrl"`
	SlotDuration int                `json:"slotDuration"`
	Jane         *JaneConfig        `json:"jane,omitempty"`
	Marketplace  *MarketplaceConfig `json:"marketplace,omitempty"`
	WorkingHours WorkingHours       `json:"workingHours"`
}

// HoursForDate возвращает рабочее окно для дня недели указанной даты (по UTC-дате).
func (p *Provider) HoursForDate(date time.Time) *DayHours {
	switch date.UTC().Weekday() {
	case time.Monday:
		return p.WorkingHours.Monday
	case time.Tuesday:
		return p.WorkingHours.Tuesday
	case time.Wednesday:
		return p.WorkingHours.Wednesday
	case time.Thursday:
		return p.WorkingHours.Thursday
	case time.Friday:
		return p.WorkingHours.Friday
	case time.Saturday:
		return p.WorkingHours.Saturday
	default:
		return p.WorkingHours.Sunday
	}
}

type SlotSource string

const (
	SlotSourceMarketplace  SlotSource = "marketplace"
	SlotSourceJane         SlotSource = "jane"
	SlotSourceCalendarFeed SlotSource = "calendar_feed"
)

// Sources возвращает упорядоченную цепочку источников для провайдера:
// маркетплейс > прямой вендор (с откатом на календарь) > календарь.
// Откат на маркетплейс не предусмотрен.
func (p *Provider) Sources() []SlotSource {
	if p.Marketplace != nil {
		return []SlotSource{SlotSourceMarketplace}
	}
	if p.Jane != nil {
		return []SlotSource{SlotSourceJane, SlotSourceCalendarFeed}
	}
	return []SlotSource{SlotSourceCalendarFeed}
}
