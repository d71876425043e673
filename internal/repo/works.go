package repo

import (
	"encoding/json"
	"fmt"

	"animehub-backend/internal/domain/works"
	"animehub-backend/internal/store"
)

// WorkRepository persists each user's works as a single array record.
// Read-modify-write without locking; lost updates between concurrent clients
// are accepted (last write wins), matching the single-client assumption of
// the original storage design.
type WorkRepository struct {
	kv store.KV
}

func NewWorkRepository(kv store.KV) *WorkRepository {
	return &WorkRepository{kv: kv}
}

// ListByUser returns the user's works, newest first (save order), with
// defaults filled in for records written by older clients.
func (r *WorkRepository) ListByUser(userID string) ([]works.Work, error) {
	raw, found, err := r.kv.Get(userWorksKey(userID))
	if err != nil {
		return nil, err
	}
	if !found {
		return []works.Work{}, nil
	}
	var list []works.Work
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode works of %s: %w", userID, err)
	}
	for i := range list {
		list[i].Normalize()
	}
	return list, nil
}

// Save prepends the work to its author's collection.
func (r *WorkRepository) Save(w *works.Work) error {
	w.Normalize()
	list, err := r.ListByUser(w.AuthorID)
	if err != nil {
		return err
	}
	list = append([]works.Work{*w}, list...)
	return r.writeAll(w.AuthorID, list)
}

// FindByID scans the user's collection for the work.
func (r *WorkRepository) FindByID(userID, id string) (*works.Work, error) {
	list, err := r.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, nil
}

// Update applies fn to the stored work and writes the collection back.
// Returns nil when the work does not exist.
func (r *WorkRepository) Update(userID, id string, fn func(*works.Work)) (*works.Work, error) {
	list, err := r.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		fn(&list[i])
		list[i].Normalize()
		if err := r.writeAll(userID, list); err != nil {
			return nil, err
		}
		updated := list[i]
		return &updated, nil
	}
	return nil, nil
}

// ToggleVisibility flips the work between public and private.
func (r *WorkRepository) ToggleVisibility(userID, id string) (*works.Work, error) {
	return r.Update(userID, id, func(w *works.Work) {
		if w.Visibility == works.VisibilityPublic {
			w.Visibility = works.VisibilityPrivate
		} else {
			w.Visibility = works.VisibilityPublic
		}
	})
}

// SubmitToContest stamps the work with the contest id.
func (r *WorkRepository) SubmitToContest(userID, id, contestID string) (*works.Work, error) {
	return r.Update(userID, id, func(w *works.Work) {
		w.ContestID = contestID
	})
}

func (r *WorkRepository) writeAll(userID string, list []works.Work) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal works of %s: %w", userID, err)
	}
	return r.kv.Set(userWorksKey(userID), raw)
}
