package repo

import (
	"encoding/json"
	"fmt"
	"time"

	"animehub-backend/internal/domain/contests"
	"animehub-backend/internal/store"
)

// NominationRepository stores each contest's judge nominations as one record.
type NominationRepository struct {
	kv store.KV
}

func NewNominationRepository(kv store.KV) *NominationRepository {
	return &NominationRepository{kv: kv}
}

func (r *NominationRepository) ListByContest(contestID string) ([]contests.Nomination, error) {
	raw, found, err := r.kv.Get(nominationsKey(contestID))
	if err != nil {
		return nil, err
	}
	if !found {
		return []contests.Nomination{}, nil
	}
	var list []contests.Nomination
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode nominations of %s: %w", contestID, err)
	}
	return list, nil
}

// Add records a nomination. A judge nominating the same work for the same
// category twice is a no-op.
func (r *NominationRepository) Add(contestID string, n contests.Nomination) error {
	list, err := r.ListByContest(contestID)
	if err != nil {
		return err
	}
	for _, existing := range list {
		if existing.WorkID == n.WorkID && existing.Category == n.Category && existing.JudgeID == n.JudgeID {
			return nil
		}
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	list = append(list, n)
	return r.write(contestID, list)
}

// Remove withdraws every nomination the judge made for the work.
func (r *NominationRepository) Remove(contestID, workID, judgeID string) error {
	list, err := r.ListByContest(contestID)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, n := range list {
		if n.WorkID == workID && n.JudgeID == judgeID {
			continue
		}
		kept = append(kept, n)
	}
	if len(kept) == len(list) {
		return nil
	}
	return r.write(contestID, kept)
}

func (r *NominationRepository) write(contestID string, list []contests.Nomination) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal nominations of %s: %w", contestID, err)
	}
	return r.kv.Set(nominationsKey(contestID), raw)
}
