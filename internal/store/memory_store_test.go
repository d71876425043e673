package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	_, found, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set("a", []byte(`{"x":1}`)))
	v, found, err := s.Get("a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"x":1}`), v)

	require.NoError(t, s.Delete("a"))
	_, found, err = s.Get("a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreDeleteMissingIsNoop(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.Delete("never-written"))
}

func TestMemoryStoreKeysByPrefix(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set("guide_draft_a", []byte(`{}`)))
	require.NoError(t, s.Set("guide_draft_b", []byte(`{}`)))
	require.NoError(t, s.Set("guide_settings_a", []byte(`{}`)))

	keys, err := s.Keys("guide_draft_")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"guide_draft_a", "guide_draft_b"}, keys)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	in := []byte(`{"x":1}`)
	require.NoError(t, s.Set("a", in))
	in[0] = '!'

	v, _, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"x":1}`), v)
}
