package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animehub-backend/internal/repo"
	"animehub-backend/internal/search"
	"animehub-backend/internal/store"
)

func newGuideFixture(t *testing.T) (*SaveGuideDraft, *GetGuideDraft, *DeleteGuideDraft, *search.Index) {
	t.Helper()
	kv := store.NewMemoryStore()
	drafts := repo.NewDraftRepository(kv)
	idx, err := search.Open()
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return &SaveGuideDraft{Drafts: drafts, Index: idx},
		&GetGuideDraft{Drafts: drafts},
		&DeleteGuideDraft{Drafts: drafts, Index: idx},
		idx
}

func TestSaveGuideDraftRoundTrip(t *testing.T) {
	save, get, _, _ := newGuideFixture(t)

	saved, err := save.Execute(SaveGuideDraftInput{
		ID:      "g1",
		Title:   "LoRA学習入門",
		Excerpt: "要約",
		Content: "# 手順\n学習率を下げる。",
	})
	require.NoError(t, err)

	got, err := get.Execute("g1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved, got)
}

func TestSaveGuideDraftDerivesExcerpt(t *testing.T) {
	save, _, _, _ := newGuideFixture(t)

	saved, err := save.Execute(SaveGuideDraftInput{
		ID:      "g1",
		Title:   "タイトル",
		Content: "# Heading\n\nFirst paragraph of the body.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Heading First paragraph of the body.", saved.Excerpt)
}

func TestSaveGuideDraftIndexesForSearch(t *testing.T) {
	save, _, del, idx := newGuideFixture(t)

	_, err := save.Execute(SaveGuideDraftInput{
		ID:      "g1",
		Title:   "guide",
		Content: "stable diffusion upscaling tutorial",
	})
	require.NoError(t, err)

	results, err := idx.Search("upscaling", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "g1", results[0].ID)

	require.NoError(t, del.Execute("g1"))
	results, err = idx.Search("upscaling", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGuideSettingsRoundTrip(t *testing.T) {
	kv := store.NewMemoryStore()
	settingsRepo := repo.NewSettingsRepository(kv)
	save := &SaveGuideSettings{Settings: settingsRepo}
	get := &GetGuideSettings{Settings: settingsRepo}

	saved, err := save.Execute(SaveGuideSettingsInput{
		ArticleID:       "g1",
		Category:        "チュートリアル",
		Classifications: []string{"イラスト"},
		Tags:            []string{"LoRA", "SDXL"},
		ContestTag:      "autumn2025",
	})
	require.NoError(t, err)
	assert.False(t, saved.UpdatedAt.IsZero())

	got, err := get.Execute("g1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved, got)

	missing, err := get.Execute("g2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
