package repo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"animehub-backend/internal/domain/guides"
	"animehub-backend/internal/store"
)

// DraftRepository persists guide drafts, one record per article id.
type DraftRepository struct {
	kv store.KV
}

func NewDraftRepository(kv store.KV) *DraftRepository {
	return &DraftRepository{kv: kv}
}

// Save overwrites the stored draft unconditionally and refreshes UpdatedAt.
func (r *DraftRepository) Save(draft *guides.GuideDraft) error {
	draft.UpdatedAt = time.Now().UTC()
	if draft.CitedGuides == nil {
		draft.CitedGuides = []guides.CitedGuide{}
	}
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft %s: %w", draft.ID, err)
	}
	return r.kv.Set(draftKey(draft.ID), raw)
}

// FindByID returns nil when the draft is absent or stored in the legacy
// section-based shape, which callers must treat as missing so the article is
// rebuilt from its published form instead.
func (r *DraftRepository) FindByID(id string) (*guides.GuideDraft, error) {
	raw, found, err := r.kv.Get(draftKey(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var probe struct {
		Sections json.RawMessage `json:"sections"`
		Content  *string         `json:"content"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", id, err)
	}
	if len(probe.Sections) > 0 && probe.Content == nil {
		return nil, nil
	}
	var draft guides.GuideDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", id, err)
	}
	return &draft, nil
}

func (r *DraftRepository) Delete(id string) error {
	return r.kv.Delete(draftKey(id))
}

// List returns every readable draft, newest first by UpdatedAt.
func (r *DraftRepository) List() ([]*guides.GuideDraft, error) {
	keys, err := r.kv.Keys(draftKeyPrefix)
	if err != nil {
		return nil, err
	}
	drafts := make([]*guides.GuideDraft, 0, len(keys))
	for _, key := range keys {
		id := strings.TrimPrefix(key, draftKeyPrefix)
		draft, err := r.FindByID(id)
		if err != nil {
			return nil, err
		}
		if draft != nil {
			drafts = append(drafts, draft)
		}
	}
	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].UpdatedAt.After(drafts[j].UpdatedAt)
	})
	return drafts, nil
}
