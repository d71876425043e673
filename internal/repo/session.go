package repo

import (
	"encoding/json"
	"fmt"

	"animehub-backend/internal/domain/users"
	"animehub-backend/internal/store"
)

// SessionRepository persists the current user record the way the original
// client kept it, under a single well-known key.
type SessionRepository struct {
	kv store.KV
}

func NewSessionRepository(kv store.KV) *SessionRepository {
	return &SessionRepository{kv: kv}
}

func (r *SessionRepository) Save(u *users.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}
	return r.kv.Set(sessionKey, raw)
}

func (r *SessionRepository) Current() (*users.User, error) {
	raw, found, err := r.kv.Get(sessionKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var u users.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}
	return &u, nil
}

func (r *SessionRepository) Clear() error {
	return r.kv.Delete(sessionKey)
}
