package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"yatrat/planner"
)

type SearchConfig struct {
	MinQuery   int    `yaml:"minQuery"`
	MaxResults int    `yaml:"maxResults"`
	Match      string `yaml:"match"` // substring | prefix
	MatchID    bool   `yaml:"matchId"`
}

type DataConfig struct {
	CityListURL   string        `yaml:"cityListURL"`
	TravelDataURL string        `yaml:"travelDataURL"`
	CacheDir      string        `yaml:"cacheDir"`
	CacheTTL      time.Duration `yaml:"cacheTTL"`
	Retries       int           `yaml:"retries"`
	Backoff       time.Duration `yaml:"backoff"`
}

type Config struct {
	Port          string        `yaml:"port"`
	FrontendURLs  []string      `yaml:"frontendURLs"`
	ResolvePolicy string        `yaml:"resolvePolicy"` // exact | accumulate | slice
	ItineraryTTL  time.Duration `yaml:"itineraryTTL"`  // in-memory store lifetime
	Search        SearchConfig  `yaml:"search"`
	Data          DataConfig    `yaml:"data"`
}

func Default() *Config {
	return &Config{
		Port:          "8080",
		ResolvePolicy: string(planner.PolicySlice),
		ItineraryTTL:  time.Hour,
		Search: SearchConfig{
			MinQuery:   1,
			MaxResults: 10,
			Match:      string(planner.MatchSubstring),
		},
		Data: DataConfig{
			CityListURL:   "https://cdn.jsdelivr.net/gh/Yatrat/it@v3.9/data/citylist.json",
			TravelDataURL: "https://cdn.jsdelivr.net/gh/Yatrat/it@v3.9/data/itinerary.json",
			CacheTTL:      6 * time.Hour,
			Retries:       3,
			Backoff:       2 * time.Second,
		},
	}
}

// Load reads the optional yaml config file, then applies env overrides on
// top. A missing or unparsable file falls back to defaults silently; env
// always wins over the file.
func Load() *Config {
	cfg := Default()

	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	cfg.Port = envString("PORT", cfg.Port)
	cfg.ResolvePolicy = envString("RESOLVE_POLICY", cfg.ResolvePolicy)
	cfg.Search.Match = envString("SEARCH_MATCH", cfg.Search.Match)
	cfg.Search.MinQuery = envInt("SEARCH_MIN_QUERY", cfg.Search.MinQuery)
	cfg.Search.MaxResults = envInt("SEARCH_MAX_RESULTS", cfg.Search.MaxResults)
	cfg.Data.CityListURL = envString("CITYLIST_URL", cfg.Data.CityListURL)
	cfg.Data.TravelDataURL = envString("TRAVELDATA_URL", cfg.Data.TravelDataURL)
	cfg.Data.CacheDir = envString("DATA_CACHE_DIR", cfg.Data.CacheDir)

	if urls := os.Getenv("FRONTEND_URL"); urls != "" {
		for _, u := range strings.Split(urls, ",") {
			if u = strings.TrimSpace(u); u != "" {
				cfg.FrontendURLs = append(cfg.FrontendURLs, u)
			}
		}
	}

	return cfg
}

// Policy returns the configured day-resolution policy, falling back to
// slice when the value is unrecognized.
func (c *Config) Policy() planner.Policy {
	if p, ok := planner.ParsePolicy(c.ResolvePolicy); ok {
		return p
	}
	return planner.PolicySlice
}

func (c *Config) IndexOptions() planner.IndexOptions {
	return planner.IndexOptions{
		MinQuery:   c.Search.MinQuery,
		MaxResults: c.Search.MaxResults,
		Match:      planner.MatchMode(c.Search.Match),
		MatchID:    c.Search.MatchID,
	}
}

// AllowedOrigins is the CORS allow-list: local dev hosts plus whatever
// FRONTEND_URL / the config file added.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	return append(origins, c.FrontendURLs...)
}

func configPath() string {
	if p := os.Getenv("YATRAT_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".config", "yatrat", "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
