package usecase

import (
	"animehub-backend/internal/domain/users"
	"animehub-backend/internal/repo"
)

// Login persists the authenticated profile as the current session record.
// The upstream identity check (who this profile is) happens before Execute;
// matching the source platform, this layer only records the result.
type Login struct {
	Sessions *repo.SessionRepository
}

func (uc *Login) Execute(u users.User) (Result, error) {
	if u.ID == "" {
		return fail("user id is required"), nil
	}
	if u.Role == "" {
		u.Role = users.RoleUser
	}
	if err := uc.Sessions.Save(&u); err != nil {
		return Result{}, err
	}
	return ok, nil
}

type Logout struct {
	Sessions *repo.SessionRepository
}

func (uc *Logout) Execute() error {
	return uc.Sessions.Clear()
}

type GetCurrentUser struct {
	Sessions *repo.SessionRepository
}

func (uc *GetCurrentUser) Execute() (*users.User, error) {
	return uc.Sessions.Current()
}
