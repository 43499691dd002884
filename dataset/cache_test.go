package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	url := "https://example.com/citylist.json"
	require.NoError(t, c.Set(url, []byte(`{"cities":[]}`)))

	body, ok := c.Get(url, time.Hour)
	require.True(t, ok)
	assert.Equal(t, `{"cities":[]}`, string(body))
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	_, ok := c.Get("https://example.com/never-set.json", time.Hour)
	assert.False(t, ok)
}

func TestFileCacheTTLExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	url := "https://example.com/itinerary.json"
	require.NoError(t, c.Set(url, []byte("data")))

	_, ok := c.Get(url, time.Nanosecond)
	assert.False(t, ok)

	// zero ttl disables the age check
	body, ok := c.Get(url, 0)
	require.True(t, ok)
	assert.Equal(t, "data", string(body))
}

func TestFileCacheDistinctURLs(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set("https://a.example/doc.json", []byte("a")))
	require.NoError(t, c.Set("https://b.example/doc.json", []byte("b")))

	body, ok := c.Get("https://a.example/doc.json", time.Hour)
	require.True(t, ok)
	assert.Equal(t, "a", string(body))
}
