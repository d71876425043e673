// Package usecase holds the application services between the HTTP handlers
// and the repositories. Each use case is a small façade so handlers and
// tests can be wired against exactly the dependencies they need.
package usecase

import (
	"animehub-backend/internal/repo"
	"animehub-backend/internal/search"
)

// Result is the outcome of a checked mutation. Authorization and validation
// failures are reported here as values, not as Go errors; errors are reserved
// for storage failures.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func fail(msg string) Result { return Result{Success: false, Error: msg} }

var ok = Result{Success: true}

// UseCases bundles every application service for route registration.
type UseCases struct {
	SaveGuideDraft     *SaveGuideDraft
	GetGuideDraft      *GetGuideDraft
	ListGuideDrafts    *ListGuideDrafts
	DeleteGuideDraft   *DeleteGuideDraft
	SaveGuideSettings  *SaveGuideSettings
	GetGuideSettings   *GetGuideSettings
	Login              *Login
	Logout             *Logout
	GetCurrentUser     *GetCurrentUser
	CreateWork         *CreateWork
	UpdateWork         *UpdateWork
	ToggleVisibility   *ToggleWorkVisibility
	SubmitToContest    *SubmitWorkToContest
	NominateWork       *NominateWork
	WithdrawNomination *WithdrawNomination
}

// New wires the use cases against one store-backed repository set.
func New(drafts *repo.DraftRepository, settings *repo.SettingsRepository, workRepo *repo.WorkRepository, citations *repo.CitationIndex, nominations *repo.NominationRepository, sessions *repo.SessionRepository, idx *search.Index) *UseCases {
	return &UseCases{
		SaveGuideDraft:     &SaveGuideDraft{Drafts: drafts, Index: idx},
		GetGuideDraft:      &GetGuideDraft{Drafts: drafts},
		ListGuideDrafts:    &ListGuideDrafts{Drafts: drafts},
		DeleteGuideDraft:   &DeleteGuideDraft{Drafts: drafts, Index: idx},
		SaveGuideSettings:  &SaveGuideSettings{Settings: settings},
		GetGuideSettings:   &GetGuideSettings{Settings: settings},
		Login:              &Login{Sessions: sessions},
		Logout:             &Logout{Sessions: sessions},
		GetCurrentUser:     &GetCurrentUser{Sessions: sessions},
		CreateWork:         &CreateWork{Works: workRepo, Citations: citations},
		UpdateWork:         &UpdateWork{Works: workRepo, Citations: citations},
		ToggleVisibility:   &ToggleWorkVisibility{Works: workRepo, Citations: citations},
		SubmitToContest:    &SubmitWorkToContest{Works: workRepo},
		NominateWork:       &NominateWork{Nominations: nominations},
		WithdrawNomination: &WithdrawNomination{Nominations: nominations},
	}
}
