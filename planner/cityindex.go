package planner

import "strings"

type MatchMode string

const (
	MatchSubstring MatchMode = "substring" // itinerary widget behavior
	MatchPrefix    MatchMode = "prefix"    // cost calculator behavior
)

type IndexOptions struct {
	MinQuery   int // queries shorter than this return nothing
	MaxResults int // cap applied after dedup
	Match      MatchMode
	MatchID    bool // also match against the city id
}

// CityIndex answers autocomplete queries over the loaded city list.
// It is read-only after construction.
type CityIndex struct {
	cities []City
	opts   IndexOptions
}

func NewCityIndex(cities []City, opts IndexOptions) *CityIndex {
	if opts.MaxResults <= 0 {
		opts.MaxResults = 10
	}
	if opts.Match == "" {
		opts.Match = MatchSubstring
	}
	return &CityIndex{cities: cities, opts: opts}
}

// Search returns cities matching the query, preserving load order,
// deduplicated by display name and capped at MaxResults.
func (ix *CityIndex) Search(query string) []City {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < ix.opts.MinQuery || q == "" {
		return nil
	}

	seen := make(map[string]bool)
	var out []City
	for _, city := range ix.cities {
		name := strings.ToLower(city.Name)
		if !ix.matches(name, city.ID, q) {
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, city)
	}

	if len(out) > ix.opts.MaxResults {
		out = out[:ix.opts.MaxResults]
	}
	return out
}

func (ix *CityIndex) matches(name, id, q string) bool {
	switch ix.opts.Match {
	case MatchPrefix:
		if strings.HasPrefix(name, q) {
			return true
		}
		return ix.opts.MatchID && strings.HasPrefix(id, q)
	default:
		if strings.Contains(name, q) {
			return true
		}
		return ix.opts.MatchID && strings.Contains(id, q)
	}
}
