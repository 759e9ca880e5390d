package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock for cache tests ---

type countingGeocoder struct {
	calls  int
	result []Place
	err    error
}

func (m *countingGeocoder) Search(_ context.Context, _, _ string, _ int) ([]Place, error) {
	m.calls++
	return m.result, m.err
}

// --- CachedGeocoder tests ---

func TestCachedGeocoder_CacheHit(t *testing.T) {
	inner := &countingGeocoder{
		result: []Place{{Name: "Amsterdam", Lat: 52.37, Lon: 4.89, CountryCode: "NL"}},
	}
	cached := NewCachedGeocoder(inner, 10)

	r1, err := cached.Search(context.Background(), "Amsterdam", "en", 5)
	require.NoError(t, err)
	assert.Equal(t, "Amsterdam", r1[0].Name)

	r2, err := cached.Search(context.Background(), "amsterdam", "en", 5)
	require.NoError(t, err)
	assert.Equal(t, "Amsterdam", r2[0].Name)

	assert.Equal(t, 1, inner.calls, "case-insensitive repeat should hit cache")
}

func TestCachedGeocoder_DifferentKeysMiss(t *testing.T) {
	inner := &countingGeocoder{result: []Place{{Name: "Place"}}}
	cached := NewCachedGeocoder(inner, 10)

	_, _ = cached.Search(context.Background(), "Amsterdam", "en", 5)
	_, _ = cached.Search(context.Background(), "Amsterdam", "nl", 5)
	_, _ = cached.Search(context.Background(), "Rotterdam", "en", 5)

	assert.Equal(t, 3, inner.calls)
}

func TestCachedGeocoder_EmptyResultNotCached(t *testing.T) {
	inner := &countingGeocoder{}
	cached := NewCachedGeocoder(inner, 10)

	_, _ = cached.Search(context.Background(), "Xyzzy", "en", 5)
	_, _ = cached.Search(context.Background(), "Xyzzy", "en", 5)

	assert.Equal(t, 2, inner.calls, "empty results should be retried")
}

func TestCachedGeocoder_ErrorPassthrough(t *testing.T) {
	inner := &countingGeocoder{err: errors.New("upstream down")}
	cached := NewCachedGeocoder(inner, 10)

	_, err := cached.Search(context.Background(), "Amsterdam", "en", 5)
	require.Error(t, err)
	assert.Equal(t, 1, inner.calls)
}

// --- LRU cache unit tests ---

func TestLRUCache_BasicGetPut(t *testing.T) {
	c := newLRUCache(3)

	c.put("a", []Place{{Name: "A"}})
	c.put("b", []Place{{Name: "B"}})

	result, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "A", result[0].Name)

	_, ok = c.get("missing")
	assert.False(t, ok)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", []Place{{Name: "A"}})
	c.put("b", []Place{{Name: "B"}})
	c.put("c", []Place{{Name: "C"}}) // evicts "a"

	_, ok := c.get("a")
	assert.False(t, ok, "a should have been evicted")

	_, ok = c.get("b")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
}

func TestLRUCache_GetRefreshesRecency(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", []Place{{Name: "A"}})
	c.put("b", []Place{{Name: "B"}})
	_, _ = c.get("a")                 // a is now most recent
	c.put("c", []Place{{Name: "C"}}) // evicts "b"

	_, ok := c.get("a")
	assert.True(t, ok)
	_, ok = c.get("b")
	assert.False(t, ok, "b should have been evicted")
}
