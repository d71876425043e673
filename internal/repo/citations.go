package repo

import (
	"encoding/json"
	"fmt"

	"animehub-backend/internal/domain/guides"
	"animehub-backend/internal/domain/works"
	"animehub-backend/internal/store"
)

// CitationIndex maintains the derived guide → citing-works mapping. Each
// guide's list lives in its own record, so the per-guide writes below are
// independent: a failure partway through leaves earlier guides updated and
// later ones untouched, and re-running the same call is safe.
type CitationIndex struct {
	kv store.KV
}

func NewCitationIndex(kv store.KV) *CitationIndex {
	return &CitationIndex{kv: kv}
}

// ListForGuide returns the works currently citing the guide.
func (r *CitationIndex) ListForGuide(guideID string) ([]guides.Citation, error) {
	raw, found, err := r.kv.Get(citationsKey(guideID))
	if err != nil {
		return nil, err
	}
	if !found {
		return []guides.Citation{}, nil
	}
	var list []guides.Citation
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode citations of %s: %w", guideID, err)
	}
	return list, nil
}

// AddWork records the work in every guide it references. Idempotent per
// work id: a guide that already lists the work is left unchanged.
func (r *CitationIndex) AddWork(w *works.Work) error {
	for _, guideID := range w.ReferencedGuideIDs {
		list, err := r.ListForGuide(guideID)
		if err != nil {
			return err
		}
		if citationPresent(list, w.ID) {
			continue
		}
		list = append(list, guides.Citation{
			ID:          w.ID,
			Title:       w.Title,
			Author:      w.AuthorName,
			MediaType:   w.MediaType,
			MediaSource: w.MediaSource,
			CreatedAt:   w.CreatedAt,
		})
		if err := r.write(guideID, list); err != nil {
			return err
		}
	}
	return nil
}

// RemoveWork drops the work from every guide it references. No-op for
// guides that never listed it.
func (r *CitationIndex) RemoveWork(w *works.Work) error {
	return r.RemoveWorkFromGuides(w.ID, w.ReferencedGuideIDs)
}

// RemoveWorkFromGuides drops the work id from the given guides' lists.
// Used directly when an edit removed guide ids the stored work no longer
// carries.
func (r *CitationIndex) RemoveWorkFromGuides(workID string, guideIDs []string) error {
	for _, guideID := range guideIDs {
		list, err := r.ListForGuide(guideID)
		if err != nil {
			return err
		}
		kept := list[:0]
		for _, c := range list {
			if c.ID != workID {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(list) {
			continue
		}
		if err := r.write(guideID, kept); err != nil {
			return err
		}
	}
	return nil
}

func (r *CitationIndex) write(guideID string, list []guides.Citation) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal citations of %s: %w", guideID, err)
	}
	return r.kv.Set(citationsKey(guideID), raw)
}

func citationPresent(list []guides.Citation, workID string) bool {
	for _, c := range list {
		if c.ID == workID {
			return true
		}
	}
	return false
}
