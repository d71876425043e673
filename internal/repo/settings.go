package repo

import (
	"encoding/json"
	"fmt"
	"time"

	"animehub-backend/internal/domain/guides"
	"animehub-backend/internal/store"
)

// SettingsRepository persists guide publish settings, keyed by article id.
type SettingsRepository struct {
	kv store.KV
}

func NewSettingsRepository(kv store.KV) *SettingsRepository {
	return &SettingsRepository{kv: kv}
}

func (r *SettingsRepository) Save(settings *guides.GuideSettings) error {
	settings.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings %s: %w", settings.ArticleID, err)
	}
	return r.kv.Set(settingsKey(settings.ArticleID), raw)
}

func (r *SettingsRepository) FindByArticleID(articleID string) (*guides.GuideSettings, error) {
	raw, found, err := r.kv.Get(settingsKey(articleID))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var settings guides.GuideSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode settings %s: %w", articleID, err)
	}
	return &settings, nil
}

func (r *SettingsRepository) Delete(articleID string) error {
	return r.kv.Delete(settingsKey(articleID))
}
