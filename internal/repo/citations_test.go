package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animehub-backend/internal/domain/works"
	"animehub-backend/internal/store"
)

func citedWork(id string, guideIDs ...string) *works.Work {
	return &works.Work{
		ID:                 id,
		Title:              "作品 " + id,
		AuthorID:           "u1",
		AuthorName:         "テスト太郎",
		MediaType:          works.MediaTypeImage,
		MediaSource:        "/media/" + id + ".png",
		Visibility:         works.VisibilityPublic,
		ReferencedGuideIDs: guideIDs,
		CreatedAt:          time.Now(),
	}
}

func TestCitationAddThenList(t *testing.T) {
	idx := NewCitationIndex(store.NewMemoryStore())
	w := citedWork("w1", "g1", "g2")
	require.NoError(t, idx.AddWork(w))

	for _, guideID := range []string{"g1", "g2"} {
		list, err := idx.ListForGuide(guideID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "w1", list[0].ID)
		assert.Equal(t, "テスト太郎", list[0].Author)
		assert.Equal(t, "/media/w1.png", list[0].MediaSource)
	}
}

func TestCitationAddIsIdempotent(t *testing.T) {
	idx := NewCitationIndex(store.NewMemoryStore())
	w := citedWork("w1", "g1")
	require.NoError(t, idx.AddWork(w))
	require.NoError(t, idx.AddWork(w))

	list, err := idx.ListForGuide("g1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCitationRemoveInvertsAdd(t *testing.T) {
	idx := NewCitationIndex(store.NewMemoryStore())
	other := citedWork("w0", "g1")
	require.NoError(t, idx.AddWork(other))

	w := citedWork("w1", "g1", "g2")
	require.NoError(t, idx.AddWork(w))
	require.NoError(t, idx.RemoveWork(w))

	list, err := idx.ListForGuide("g1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "w0", list[0].ID)

	list, err = idx.ListForGuide("g2")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCitationRemoveMissingIsNoop(t *testing.T) {
	idx := NewCitationIndex(store.NewMemoryStore())
	assert.NoError(t, idx.RemoveWork(citedWork("w1", "g1")))

	list, err := idx.ListForGuide("g1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCitationRemoveFromSpecificGuides(t *testing.T) {
	idx := NewCitationIndex(store.NewMemoryStore())
	w := citedWork("w1", "g1", "g2")
	require.NoError(t, idx.AddWork(w))

	require.NoError(t, idx.RemoveWorkFromGuides("w1", []string{"g1"}))

	list, err := idx.ListForGuide("g1")
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = idx.ListForGuide("g2")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
