package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatrat/planner"
)

const cityListFixture = `{
	"cities": [
		{"id": "jaipur", "name": "Jaipur", "country": "India"},
		{"id": "jaisalmer", "name": "Jaisalmer", "country": "India", "hub": "jodhpur"},
		{"id": "", "name": "Nameless"}
	]
}`

const travelDataFixture = `{
	"cities": {
		"jaipur": {
			"name": "Jaipur",
			"plans": {
				"2": [["Amber Fort", "City Palace"], "Hawa Mahal walk"],
				"nope": [["ignored"]]
			},
			"days": {"1": ["Amber Fort"], "3": ["Nahargarh sunset"]}
		},
		"jaisalmer": {
			"name": "Jaisalmer",
			"costs": {
				"hotel": 1000,
				"food": 300,
				"transport": ["train", "bus", "own_vehicle"],
				"hub": "jodhpur",
				"hub_transport": ["bus"],
				"bus_prices": {
					"jodhpur-jaisalmer": [600, 350],
					"broken": [1]
				}
			}
		}
	}
}`

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/citylist.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(cityListFixture))
	})
	mux.HandleFunc("/itinerary.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(travelDataFixture))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadSnapshot(t *testing.T) {
	srv := fixtureServer(t)
	src := &Source{
		CityListURL:   srv.URL + "/citylist.json",
		TravelDataURL: srv.URL + "/itinerary.json",
	}

	snap, err := src.Load(context.Background())
	require.NoError(t, err)

	// entries without an id are dropped
	require.Len(t, snap.Cities, 2)
	assert.Equal(t, "jaipur", snap.Cities[0].ID)
	assert.Equal(t, "jodhpur", snap.Cities[1].Hub)

	rec, ok := snap.Records["jaipur"]
	require.True(t, ok)
	// bad day-count key skipped, bare-string day decoded as one activity
	require.Len(t, rec.Plans, 1)
	assert.Equal(t, planner.DayActivities{"Hawa Mahal walk"}, rec.Plans[2][1])
	assert.Equal(t, planner.DayActivities{"Nahargarh sunset"}, rec.Days[3])

	profile, ok := snap.Profiles["jaisalmer"]
	require.True(t, ok)
	assert.Equal(t, 1000.0, profile.HotelRate)
	assert.Equal(t, "jodhpur", profile.Hub)
	// reversed pair normalized, malformed pair dropped
	assert.Equal(t, planner.Range{Min: 350, Max: 600}, profile.BusPrices["jodhpur-jaisalmer"])
	assert.NotContains(t, profile.BusPrices, "broken")
}

func TestLoadRetriesThenSucceeds(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/citylist.json", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(cityListFixture))
	})
	mux.HandleFunc("/itinerary.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(travelDataFixture))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	src := &Source{
		CityListURL:   srv.URL + "/citylist.json",
		TravelDataURL: srv.URL + "/itinerary.json",
		Retries:       3,
		Backoff:       time.Millisecond,
	}

	_, err := src.Load(context.Background())
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(2))
}

func TestLoadServesCacheWhenFetchFails(t *testing.T) {
	srv := fixtureServer(t)
	cache, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	src := &Source{
		CityListURL:   srv.URL + "/citylist.json",
		TravelDataURL: srv.URL + "/itinerary.json",
		Retries:       1,
		Backoff:       time.Millisecond,
		Cache:         cache,
	}

	_, err = src.Load(context.Background())
	require.NoError(t, err)

	// upstream gone, cache still answers
	srv.Close()
	snap, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Cities, 2)
}

func TestLoadCombinedDocument(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/itinerary.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(travelDataFixture))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// both URLs point at the combined document
	src := &Source{
		CityListURL:   srv.URL + "/itinerary.json",
		TravelDataURL: srv.URL + "/itinerary.json",
	}

	snap, err := src.Load(context.Background())
	require.NoError(t, err)

	// derived from the record map, sorted by id
	require.Len(t, snap.Cities, 2)
	assert.Equal(t, "jaipur", snap.Cities[0].ID)
	assert.Equal(t, "jaisalmer", snap.Cities[1].ID)
	assert.Equal(t, "jodhpur", snap.Cities[1].Hub)
}

func TestLoadDataUnavailable(t *testing.T) {
	src := &Source{
		CityListURL:   "http://127.0.0.1:1/citylist.json",
		TravelDataURL: "http://127.0.0.1:1/itinerary.json",
		Retries:       1,
		Backoff:       time.Millisecond,
	}

	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, planner.ErrDataUnavailable)
}
