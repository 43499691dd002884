package planner

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ─── Cities ───────────────────────────────────────────────────────────────────

type City struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Hub     string `json:"hub,omitempty"` // transit hub city id, if any
}

// ─── Itineraries ──────────────────────────────────────────────────────────────

// DayActivities is the list of activities for a single day. Some data
// revisions ship a bare string per day instead of an array, so both shapes
// decode into the same type.
type DayActivities []string

func (d *DayActivities) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*d = DayActivities{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*d = DayActivities(many)
	return nil
}

// ItineraryRecord is a city's curated itinerary content. Plans holds
// complete day-by-day profiles keyed by their total day count (the "4-day
// plan"); Days holds individually curated days keyed by day number, which
// may be sparse.
type ItineraryRecord struct {
	Name  string
	Plans map[int][]DayActivities
	Days  map[int]DayActivities
}

type ItineraryDay struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

// Itinerary is a resolved day-by-day plan. CoveredDays counts the requested
// days for which curated content actually exists; fewer covered days than
// requested is a successful result, not an error.
type Itinerary struct {
	CityID        string         `json:"city_id"`
	CityName      string         `json:"city_name"`
	RequestedDays int            `json:"requested_days"`
	CoveredDays   int            `json:"covered_days"`
	Days          []ItineraryDay `json:"days"`
}

// ─── Costs ────────────────────────────────────────────────────────────────────

// Range is an estimated price band in whole currency units, Min <= Max.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Add(other Range) Range {
	return Range{Min: r.Min + other.Min, Max: r.Max + other.Max}
}

func (r Range) Scale(factor int) Range {
	return Range{Min: r.Min * factor, Max: r.Max * factor}
}

// CostProfile holds a destination's base rates used by the estimator.
// BusPrices is keyed by "<origin>-<destination>" city id pairs.
type CostProfile struct {
	Name         string
	HotelRate    float64 // per night
	FoodRate     float64 // per person per day
	Transport    []string
	Hub          string
	HubTransport []string
	BusPrices    map[string]Range
}

// ─── City id derivation ───────────────────────────────────────────────────────

var slugSpaces = regexp.MustCompile(`\s+`)

// Slugify derives a city id from free-typed text. Callers that got an id
// from an explicit suggestion pick should pass that id through untouched;
// slugged free text can miss when the typed name doesn't match a known city.
func Slugify(name string) string {
	return slugSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
