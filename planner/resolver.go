package planner

// Policy selects how a requested day count is resolved against curated
// content. The widget revisions shipped three incompatible behaviors over
// time, so the choice is explicit configuration rather than a silent
// default.
type Policy string

const (
	// PolicyExact returns a plan only when one exists under the exact
	// requested day count.
	PolicyExact Policy = "exact"

	// PolicyAccumulate walks days 1..N over the day-keyed entries; days
	// without content are skipped silently.
	PolicyAccumulate Policy = "accumulate"

	// PolicySlice falls back from an exact match to the first
	// min(N, len) days of the longest curated profile.
	PolicySlice Policy = "slice"
)

func ParsePolicy(s string) (Policy, bool) {
	switch Policy(s) {
	case PolicyExact, PolicyAccumulate, PolicySlice:
		return Policy(s), true
	}
	return "", false
}

// Resolver turns (city id, requested days) into a day-by-day itinerary.
// Read-only after construction; identical inputs always produce identical
// output.
type Resolver struct {
	records map[string]ItineraryRecord
	policy  Policy
}

func NewResolver(records map[string]ItineraryRecord, policy Policy) *Resolver {
	if policy == "" {
		policy = PolicySlice
	}
	return &Resolver{records: records, policy: policy}
}

func (r *Resolver) Policy() Policy { return r.policy }

// Resolve returns the best-available plan for the city. Fewer covered days
// than requested is a success; only a city with zero resolvable activities
// yields ErrNoPlan.
func (r *Resolver) Resolve(cityID string, requestedDays int) (Itinerary, error) {
	if requestedDays < 1 {
		return Itinerary{}, invalidf("days", "must be at least 1, got %d", requestedDays)
	}

	rec, ok := r.records[cityID]
	if !ok {
		return Itinerary{}, ErrCityNotFound
	}

	var days []ItineraryDay
	switch r.policy {
	case PolicyExact:
		days = resolveExact(rec, requestedDays)
	case PolicyAccumulate:
		days = resolveAccumulate(rec, requestedDays)
	default:
		days = resolveSlice(rec, requestedDays)
	}

	total := 0
	for _, d := range days {
		total += len(d.Activities)
	}
	if total == 0 {
		return Itinerary{}, ErrNoPlan
	}

	return Itinerary{
		CityID:        cityID,
		CityName:      rec.Name,
		RequestedDays: requestedDays,
		CoveredDays:   len(days),
		Days:          days,
	}, nil
}

func resolveExact(rec ItineraryRecord, requestedDays int) []ItineraryDay {
	plan, ok := rec.Plans[requestedDays]
	if !ok {
		return nil
	}
	return planDays(plan, len(plan))
}

func resolveAccumulate(rec ItineraryRecord, requestedDays int) []ItineraryDay {
	var out []ItineraryDay
	for day := 1; day <= requestedDays; day++ {
		acts, ok := rec.Days[day]
		if !ok {
			continue
		}
		cleaned := cleanAll(acts)
		if len(cleaned) == 0 {
			continue
		}
		out = append(out, ItineraryDay{Day: day, Activities: cleaned})
	}
	return out
}

func resolveSlice(rec ItineraryRecord, requestedDays int) []ItineraryDay {
	if days := resolveExact(rec, requestedDays); days != nil {
		return days
	}

	longest := 0
	for length := range rec.Plans {
		if length > longest {
			longest = length
		}
	}
	if longest == 0 {
		return nil
	}

	plan := rec.Plans[longest]
	take := requestedDays
	if take > len(plan) {
		take = len(plan)
	}
	return planDays(plan, take)
}

func planDays(plan []DayActivities, take int) []ItineraryDay {
	out := make([]ItineraryDay, 0, take)
	for i := 0; i < take && i < len(plan); i++ {
		out = append(out, ItineraryDay{Day: i + 1, Activities: cleanAll(plan[i])})
	}
	return out
}
