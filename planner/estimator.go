package planner

import "math"

// Transport mode sentinel: travellers using their own vehicle get pointed
// at the fuel-cost tool instead of a price band.
const ModeOwnVehicle = "own_vehicle"

// ModeBus is the only hub-transport mode with curated point-to-point
// pricing.
const ModeBus = "bus"

type CategoryStatus string

const (
	// StatusEstimated means the category carries a computed price band.
	StatusEstimated CategoryStatus = "estimated"
	// StatusCheckSite means pricing belongs to a third-party carrier and no
	// number is fabricated.
	StatusCheckSite CategoryStatus = "check_official_site"
	// StatusExternalTool points at the fuel-cost calculator.
	StatusExternalTool CategoryStatus = "external_tool"
	// StatusUnavailable means no curated price exists for the leg.
	StatusUnavailable CategoryStatus = "unavailable"
)

type CostCategory struct {
	Key    string         `json:"key"`
	Label  string         `json:"label"`
	Status CategoryStatus `json:"status"`
	Range  *Range         `json:"range,omitempty"`
	Note   string         `json:"note,omitempty"`
}

// CostBreakdown is presentation-ready: a per-category breakdown plus the
// combined total band. Only StatusEstimated categories contribute to Total.
type CostBreakdown struct {
	CityID     string         `json:"city_id"`
	CityName   string         `json:"city_name"`
	Days       int            `json:"days"`
	People     int            `json:"people"`
	Categories []CostCategory `json:"categories"`
	Total      Range          `json:"total"`
}

type EstimateRequest struct {
	Origin     string
	CityID     string
	Days       int
	People     int
	DirectMode string
	HubMode    string
}

const (
	maxTripDays  = 30
	maxPartySize = 10
	spreadPct    = 10
)

// Estimator computes trip cost bands from per-city base rates.
type Estimator struct {
	profiles map[string]CostProfile
}

func NewEstimator(profiles map[string]CostProfile) *Estimator {
	return &Estimator{profiles: profiles}
}

// Estimate validates the request and returns the cost breakdown. Validation
// failures are reported one at a time, in a fixed order, so the first bad
// field is always the one surfaced.
func (e *Estimator) Estimate(req EstimateRequest) (CostBreakdown, error) {
	if req.Origin == "" {
		return CostBreakdown{}, invalidf("origin", "an origin city must be selected")
	}
	if req.Days < 1 || req.Days > maxTripDays {
		return CostBreakdown{}, invalidf("days", "must be between 1 and %d, got %d", maxTripDays, req.Days)
	}
	if req.People < 1 || req.People > maxPartySize {
		return CostBreakdown{}, invalidf("people", "must be between 1 and %d, got %d", maxPartySize, req.People)
	}
	profile, ok := e.profiles[req.CityID]
	if !ok {
		return CostBreakdown{}, ErrCityNotFound
	}

	hotel := makeRange(profile.HotelRate*float64(req.Days), spreadPct)
	food := makeRange(profile.FoodRate*float64(req.Days)*float64(req.People), spreadPct)

	breakdown := CostBreakdown{
		CityID:   req.CityID,
		CityName: profile.Name,
		Days:     req.Days,
		People:   req.People,
		Categories: []CostCategory{
			{Key: "hotel", Label: "Hotel", Status: StatusEstimated, Range: &hotel},
			{Key: "food", Label: "Food", Status: StatusEstimated, Range: &food},
		},
		Total: hotel.Add(food),
	}

	if cat, ok := directCategory(req.DirectMode); ok {
		breakdown.Categories = append(breakdown.Categories, cat)
	}
	if cat, ok := e.hubCategory(profile, req); ok {
		if cat.Status == StatusEstimated {
			breakdown.Total = breakdown.Total.Add(*cat.Range)
		}
		breakdown.Categories = append(breakdown.Categories, cat)
	}

	return breakdown, nil
}

// directCategory never carries a price: third-party carrier fares are not
// guessed at, and own-vehicle trips belong to the fuel tool.
func directCategory(mode string) (CostCategory, bool) {
	switch mode {
	case "":
		return CostCategory{}, false
	case ModeOwnVehicle:
		return CostCategory{
			Key:    "transport",
			Label:  "Transport (own vehicle)",
			Status: StatusExternalTool,
			Note:   "Use the fuel cost calculator to estimate driving costs.",
		}, true
	default:
		return CostCategory{
			Key:    "transport",
			Label:  "Transport (" + mode + ")",
			Status: StatusCheckSite,
			Note:   "Check the official carrier site for current fares.",
		}, true
	}
}

func (e *Estimator) hubCategory(profile CostProfile, req EstimateRequest) (CostCategory, bool) {
	if profile.Hub == "" || req.HubMode != ModeBus {
		return CostCategory{}, false
	}

	cat := CostCategory{
		Key:   "hub_transport",
		Label: "Bus via " + hubName(e.profiles, profile.Hub),
	}

	pair, ok := profile.BusPrices[profile.Hub+"-"+req.CityID]
	if !ok {
		cat.Status = StatusUnavailable
		cat.Note = "No curated bus fare for this leg."
		return cat, true
	}

	scaled := pair.Scale(req.People)
	cat.Status = StatusEstimated
	cat.Range = &scaled
	return cat, true
}

func hubName(profiles map[string]CostProfile, hubID string) string {
	if p, ok := profiles[hubID]; ok && p.Name != "" {
		return p.Name
	}
	return hubID
}

// makeRange widens a value into a ±pct% band so results read as estimates,
// not quotes. Round-to-nearest on both ends.
func makeRange(value float64, pct int) Range {
	spread := value * float64(pct) / 100
	return Range{
		Min: int(math.Round(value - spread)),
		Max: int(math.Round(value + spread)),
	}
}
