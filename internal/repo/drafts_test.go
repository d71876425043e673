package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animehub-backend/internal/domain/guides"
	"animehub-backend/internal/store"
)

func TestDraftSaveThenFindRoundTrips(t *testing.T) {
	r := NewDraftRepository(store.NewMemoryStore())

	draft := &guides.GuideDraft{
		ID:               "g1",
		Title:            "ControlNetの使い方",
		Excerpt:          "姿勢制御の基本",
		Content:          "# はじめに\n本文です。",
		ThumbnailPreview: "data:image/png;base64,xxxx",
		CitedGuides: []guides.CitedGuide{
			{ID: "g0", Title: "前提ガイド", Thumbnail: "/thumbs/g0.png"},
		},
	}
	require.NoError(t, r.Save(draft))

	got, err := r.FindByID("g1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.False(t, got.UpdatedAt.IsZero())
	got.UpdatedAt = draft.UpdatedAt
	assert.Equal(t, draft, got)
}

func TestDraftFindMissingReturnsNil(t *testing.T) {
	r := NewDraftRepository(store.NewMemoryStore())
	got, err := r.FindByID("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftLegacySectionShapeReadsAsMissing(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set("guide_draft_old", []byte(`{"id":"old","title":"旧形式","sections":[{"heading":"intro"}]}`)))
	r := NewDraftRepository(kv)

	got, err := r.FindByID("old")
	require.NoError(t, err)
	assert.Nil(t, got)

	// A record carrying both fields is a modern draft.
	require.NoError(t, kv.Set("guide_draft_mixed", []byte(`{"id":"mixed","title":"混在","sections":[],"content":"body"}`)))
	got, err = r.FindByID("mixed")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "body", got.Content)
}

func TestDraftDelete(t *testing.T) {
	r := NewDraftRepository(store.NewMemoryStore())
	require.NoError(t, r.Save(&guides.GuideDraft{ID: "g1", Title: "t"}))
	require.NoError(t, r.Delete("g1"))

	got, err := r.FindByID("g1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftListSortsByUpdatedAtDescending(t *testing.T) {
	r := NewDraftRepository(store.NewMemoryStore())
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, r.Save(&guides.GuideDraft{ID: id, Title: id}))
		time.Sleep(2 * time.Millisecond)
	}

	list, err := r.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Saved in order a, b, c, so c has the newest timestamp.
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
	assert.Equal(t, "a", list[2].ID)
	assert.True(t, list[0].UpdatedAt.After(list[1].UpdatedAt) || list[0].UpdatedAt.Equal(list[1].UpdatedAt))
}

func TestDraftListSkipsLegacyRecords(t *testing.T) {
	kv := store.NewMemoryStore()
	r := NewDraftRepository(kv)
	require.NoError(t, r.Save(&guides.GuideDraft{ID: "new", Title: "t"}))
	require.NoError(t, kv.Set("guide_draft_old", []byte(`{"id":"old","sections":[1]}`)))

	list, err := r.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].ID)
}
