package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type cacheEntry struct {
	URL       string    `json:"url"`
	Body      []byte    `json:"body"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// FileCache keeps the last good copy of each fetched document on disk so a
// flaky CDN doesn't take the service down with it. Entries are keyed by
// URL hash; content is replace-only.
type FileCache struct {
	dir string
	mu  sync.RWMutex
}

func NewFileCache(dir string) (*FileCache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".cache", "yatrat", "data")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create cache dir")
	}
	return &FileCache{dir: dir}, nil
}

// Get returns the cached body for url if it is younger than ttl. A ttl of
// zero disables the age check, which is how the loader serves stale copies
// when the upstream fetch fails outright.
func (c *FileCache) Get(url string, ttl time.Duration) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.path(url))
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	if ttl > 0 && time.Since(entry.FetchedAt) > ttl {
		return nil, false
	}
	return entry.Body, true
}

func (c *FileCache) Set(url string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := json.Marshal(cacheEntry{
		URL:       url,
		Body:      body,
		FetchedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(url), raw, 0o644)
}

func (c *FileCache) path(url string) string {
	h := sha256.Sum256([]byte(url))
	return filepath.Join(c.dir, hex.EncodeToString(h[:])+".json")
}
