package domain

// TimeWindow — именованное окно времени суток в локальных часах Ванкувера.
// Слот проходит фильтр, если час его начала попадает в [Start, End).
type TimeWindow struct {
	Start int
	End   int
}

var TimeWindows = map[string]TimeWindow{
	"any":       {Start: 0, End: 24},
	"morning":   {Start: 6, End: 12},
	"afternoon": {Start: 12, End: 17},
	"evening":   {Start: 17, End: 21},
}

// DisciplineMap — алиасы услуг в дисциплины маркетплейса.
var DisciplineMap = map[string]string{
	"massage": "massage_therapy",
	"physio":  "physiotherapy",
	"chiro":   "chiropractic",
}

type SearchQuery struct {
	Service string `json:"service"`
	Date    string `json:"date"` // YYYY-MM-DD
	Window  string `json:"time"`
}

// ProviderAvailability — провайдер с его подходящими слотами после фильтрации.
type ProviderAvailability struct {
	Provider Provider   `json:"provider"`
	Slots    []TimeSlot `json:"slots"`
}

type DiscoverQuery struct {
	Address    string
	Lat        float64
	Lng        float64
	HasCoords  bool
	Discipline string
	RadiusKm   float64
}

type DiscoverResult struct {
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	Discipline    string         `json:"discipline"`
	RadiusKm      float64        `json:"radiusKm"`
	Practitioners []Practitioner `json:"practitioners"`
	CoverageNote  string         `json:"coverageNote,omitempty"`
}
