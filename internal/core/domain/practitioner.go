package domain

import (
	"math"
	"strconv"
	"strings"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type BoundingBox struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

type FirstOpening struct {
	StartAt string `json:"startAt"`
}

// Practitioner — запись специалиста из поиска маркетплейса.
type Practitioner struct {
	StaffMemberGuid         string        `json:"staffMemberGuid"`
	ClinicLocationGuid      string        `json:"clinicLocationGuid"`
	FullName                string        `json:"fullName"`
	ClinicName              string        `json:"clinicName"`
	ClinicBookingURL        string        `json:"clinicBookingUrl"`
	Photo                   string        `json:"photo"`
	Description             string        `json:"description"`
	PractitionerDisciplines []string      `json:"practitionerDisciplines"`
	Disciplines             []string      `json:"disciplines"`
	LocationCoordinates     Coordinates   `json:"locationCoordinates"`
	StreetAddress           string        `json:"streetAddress"`
	City                    string        `json:"city"`
	Province                string        `json:"province"`
	Postal                  string        `json:"postal"`
	FirstOpening            *FirstOpening `json:"firstOpening"`
}

// LocationID извлекает числовой идентификатор локации из clinicLocationGuid
// вида "3856-1". При нераспознаваемом значении возвращает 1.
func (p *Practitioner) LocationID() int {
	parts := strings.Split(p.ClinicLocationGuid, "-")
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || id < 1 {
		return 1
	}
	return id
}

// BuildBounds строит географическую рамку вокруг точки по радиусу в километрах.
// 1 градус широты ~ 111 км; градусы долготы масштабируются на cos(широты).
// Значения округляются до 2 знаков для исходящего запроса.
func BuildBounds(lat, lng, radiusKm float64) BoundingBox {
	latDeg := radiusKm / 111
	lngDeg := radiusKm / (111 * math.Cos(lat*math.Pi/180))
	return BoundingBox{
		Top:    round2(lat + latDeg),
		Right:  round2(lng + lngDeg),
		Bottom: round2(lat - latDeg),
		Left:   round2(lng - lngDeg),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
