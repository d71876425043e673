package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animehub-backend/internal/domain/guides"
)

func TestIndexAndSearch(t *testing.T) {
	idx, err := Open()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.IndexDraft(&guides.GuideDraft{
		ID:      "g1",
		Title:   "初心者ガイド",
		Content: "how to train a lora model",
	}))
	require.NoError(t, idx.IndexDraft(&guides.GuideDraft{
		ID:      "g2",
		Title:   "動画編集ガイド",
		Content: "cutting and encoding video",
	}))

	results, err := idx.Search("lora", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "g1", results[0].ID)

	results, err = idx.Search("Title:ガイド", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestIndexDeleteAndCount(t *testing.T) {
	idx, err := Open()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.IndexDraft(&guides.GuideDraft{ID: "g1", Title: "t", Content: "c"}))
	n, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	require.NoError(t, idx.Delete("g1"))
	n, err = idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
}

func TestRebuildBatches(t *testing.T) {
	idx, err := Open()
	require.NoError(t, err)
	defer idx.Close()

	drafts := []*guides.GuideDraft{
		{ID: "a", Title: "one", Content: "alpha"},
		{ID: "b", Title: "two", Content: "beta"},
		{ID: "c", Title: "three", Content: "gamma"},
	}
	require.NoError(t, idx.Rebuild(drafts))

	n, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)
}
