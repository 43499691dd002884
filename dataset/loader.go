package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"yatrat/planner"
)

// Snapshot is the fully loaded, immutable view of the travel data. The
// planner packages only ever see a Snapshot; fetch mechanics stay here.
type Snapshot struct {
	Cities   []planner.City
	Records  map[string]planner.ItineraryRecord
	Profiles map[string]planner.CostProfile
	LoadedAt time.Time
}

// Source fetches the city list and travel data documents.
type Source struct {
	CityListURL   string
	TravelDataURL string
	Retries       int
	Backoff       time.Duration
	CacheTTL      time.Duration

	Cache  *FileCache
	Client *http.Client
}

// ─── Wire formats ─────────────────────────────────────────────────────────────

type cityListDoc struct {
	Cities []cityEntry `json:"cities"`
}

type cityEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Hub     string `json:"hub"`
}

type travelDoc struct {
	Cities map[string]cityRecord `json:"cities"`
}

type cityRecord struct {
	Name  string                             `json:"name"`
	Plans map[string][]planner.DayActivities `json:"plans"`
	Days  map[string]planner.DayActivities   `json:"days"`
	Costs *costRecord                        `json:"costs"`
}

type costRecord struct {
	Hotel        float64              `json:"hotel"`
	Food         float64              `json:"food"`
	Transport    []string             `json:"transport"`
	Hub          string               `json:"hub"`
	HubTransport []string             `json:"hub_transport"`
	BusPrices    map[string][]float64 `json:"bus_prices"`
}

// ─── Loading ──────────────────────────────────────────────────────────────────

// Load fetches both documents concurrently and joins before returning, so
// callers always see a complete snapshot or an error. On fetch failure the
// cached copy is served when one exists; with neither, the result is
// planner.ErrDataUnavailable.
func (s *Source) Load(ctx context.Context) (*Snapshot, error) {
	var (
		wg                 sync.WaitGroup
		cityRaw, travelRaw []byte
		cityErr, travelErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cityRaw, cityErr = s.fetch(ctx, s.CityListURL)
	}()
	go func() {
		defer wg.Done()
		travelRaw, travelErr = s.fetch(ctx, s.TravelDataURL)
	}()
	wg.Wait()

	if cityErr != nil {
		return nil, cityErr
	}
	if travelErr != nil {
		return nil, travelErr
	}

	entries, err := decodeCityList(cityRaw)
	if err != nil {
		return nil, errors.Wrap(err, "decode city list")
	}
	var travel travelDoc
	if err := json.Unmarshal(travelRaw, &travel); err != nil {
		return nil, errors.Wrap(err, "decode travel data")
	}

	snap := &Snapshot{
		Records:  make(map[string]planner.ItineraryRecord),
		Profiles: make(map[string]planner.CostProfile),
		LoadedAt: time.Now().UTC(),
	}

	for _, entry := range entries {
		if entry.ID == "" || entry.Name == "" {
			continue
		}
		snap.Cities = append(snap.Cities, planner.City{
			ID:      entry.ID,
			Name:    entry.Name,
			Country: entry.Country,
			Hub:     entry.Hub,
		})
	}

	for id, rec := range travel.Cities {
		snap.Records[id] = convertRecord(id, rec)
		if rec.Costs != nil {
			snap.Profiles[id] = convertProfile(rec.Name, rec.Costs)
		}
	}

	log.Printf("✅ Travel data loaded: %d cities, %d itinerary records, %d cost profiles",
		len(snap.Cities), len(snap.Records), len(snap.Profiles))
	return snap, nil
}

// decodeCityList accepts both shipped shapes of the city document: the
// usual array under "cities", or a combined document where "cities" is the
// record map itself. The map form has no inherent order, so entries are
// sorted by id to keep search results deterministic.
func decodeCityList(raw []byte) ([]cityEntry, error) {
	var doc cityListDoc
	if err := json.Unmarshal(raw, &doc); err == nil {
		return doc.Cities, nil
	}

	var combined struct {
		Cities map[string]struct {
			Name    string      `json:"name"`
			Country string      `json:"country"`
			Costs   *costRecord `json:"costs"`
		} `json:"cities"`
	}
	if err := json.Unmarshal(raw, &combined); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(combined.Cities))
	for id := range combined.Cities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]cityEntry, 0, len(ids))
	for _, id := range ids {
		rec := combined.Cities[id]
		entry := cityEntry{ID: id, Name: rec.Name, Country: rec.Country}
		if rec.Costs != nil {
			entry.Hub = rec.Costs.Hub
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func convertRecord(id string, rec cityRecord) planner.ItineraryRecord {
	out := planner.ItineraryRecord{Name: rec.Name}

	if len(rec.Plans) > 0 {
		out.Plans = make(map[int][]planner.DayActivities, len(rec.Plans))
		for key, plan := range rec.Plans {
			days, err := strconv.Atoi(key)
			if err != nil || days < 1 {
				log.Printf("⚠️  Skipping plan with bad day-count key %q for city %s", key, id)
				continue
			}
			out.Plans[days] = plan
		}
	}

	if len(rec.Days) > 0 {
		out.Days = make(map[int]planner.DayActivities, len(rec.Days))
		for key, acts := range rec.Days {
			day, err := strconv.Atoi(key)
			if err != nil || day < 1 {
				log.Printf("⚠️  Skipping day entry with bad key %q for city %s", key, id)
				continue
			}
			out.Days[day] = acts
		}
	}

	return out
}

func convertProfile(name string, costs *costRecord) planner.CostProfile {
	profile := planner.CostProfile{
		Name:         name,
		HotelRate:    costs.Hotel,
		FoodRate:     costs.Food,
		Transport:    costs.Transport,
		Hub:          costs.Hub,
		HubTransport: costs.HubTransport,
	}

	if len(costs.BusPrices) > 0 {
		profile.BusPrices = make(map[string]planner.Range, len(costs.BusPrices))
		for key, pair := range costs.BusPrices {
			if len(pair) != 2 {
				log.Printf("⚠️  Skipping malformed bus price %q (%d values)", key, len(pair))
				continue
			}
			lo, hi := int(pair[0]), int(pair[1])
			if lo > hi {
				lo, hi = hi, lo
			}
			profile.BusPrices[key] = planner.Range{Min: lo, Max: hi}
		}
	}

	return profile
}

// ─── Fetching ─────────────────────────────────────────────────────────────────

func (s *Source) fetch(ctx context.Context, url string) ([]byte, error) {
	retries := s.Retries
	if retries < 1 {
		retries = 1
	}
	backoff := s.Backoff
	if backoff <= 0 {
		backoff = time.Second
	}

	if s.Cache != nil && s.CacheTTL > 0 {
		if body, ok := s.Cache.Get(url, s.CacheTTL); ok {
			return body, nil
		}
	}

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		body, err := s.fetchOnce(ctx, url)
		if err == nil {
			if s.Cache != nil {
				if cerr := s.Cache.Set(url, body); cerr != nil {
					log.Printf("⚠️  Failed to cache %s: %v", url, cerr)
				}
			}
			return body, nil
		}
		lastErr = err
		if attempt < retries {
			log.Printf("⏳ Fetch %s failed (attempt %d/%d): %v", url, attempt, retries, err)
			select {
			case <-time.After(backoff * time.Duration(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	// stale cache beats no data at all
	if s.Cache != nil {
		if body, ok := s.Cache.Get(url, 0); ok {
			log.Printf("⚠️  Serving cached copy of %s after fetch failure: %v", url, lastErr)
			return body, nil
		}
	}

	return nil, errors.Wrapf(planner.ErrDataUnavailable, "fetch %s: %v", url, lastErr)
}

func (s *Source) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
