package usecase

import (
	"time"

	"github.com/google/uuid"

	"animehub-backend/internal/domain/contests"
	"animehub-backend/internal/domain/users"
	"animehub-backend/internal/domain/works"
	"animehub-backend/internal/repo"
)

// WorkInput carries the author-writable fields of a work. Visibility is
// managed through ToggleWorkVisibility, contest membership through
// SubmitWorkToContest.
type WorkInput struct {
	Title              string               `json:"title"`
	MediaType          string               `json:"mediaType"`
	MediaSource        string               `json:"mediaSource"`
	Summary            string               `json:"summary"`
	Classifications    []string             `json:"classifications"`
	AIModels           []string             `json:"aiModels"`
	Tags               []string             `json:"tags"`
	ReferencedGuideIDs []string             `json:"referencedGuideIds"`
	ExternalLinks      []works.ExternalLink `json:"externalLinks"`
	Visibility         string               `json:"visibility"`
}

// WorkResult reports a checked work mutation together with the stored value.
type WorkResult struct {
	Result
	Work *works.Work `json:"work,omitempty"`
}

func failWork(msg string) WorkResult { return WorkResult{Result: fail(msg)} }

// CreateWork stores a new work for its author and, when the work is born
// public, registers it in the citation index of every guide it references.
type CreateWork struct {
	Works     *repo.WorkRepository
	Citations *repo.CitationIndex
}

func (uc *CreateWork) Execute(input WorkInput, author users.User) (WorkResult, error) {
	if author.ID == "" {
		return failWork("author is required"), nil
	}
	w := &works.Work{
		ID:                 uuid.NewString(),
		Title:              input.Title,
		AuthorID:           author.ID,
		AuthorName:         author.Name,
		AuthorAvatar:       author.Avatar,
		MediaType:          input.MediaType,
		MediaSource:        input.MediaSource,
		Summary:            input.Summary,
		Classifications:    input.Classifications,
		AIModels:           input.AIModels,
		Tags:               input.Tags,
		ReferencedGuideIDs: input.ReferencedGuideIDs,
		ExternalLinks:      ensureLinkIDs(input.ExternalLinks),
		Visibility:         input.Visibility,
		CreatedAt:          time.Now().UTC(),
	}
	enforceAIModelRule(w)
	if err := uc.Works.Save(w); err != nil {
		return WorkResult{}, err
	}
	if w.IsPublic() {
		if err := uc.Citations.AddWork(w); err != nil {
			return WorkResult{}, err
		}
	}
	return WorkResult{Result: ok, Work: w}, nil
}

// UpdateWork applies the input to an owned work. Guides the edit dropped
// lose their citation entry, guides it added gain one, but only while the
// work is public.
type UpdateWork struct {
	Works     *repo.WorkRepository
	Citations *repo.CitationIndex
}

func (uc *UpdateWork) Execute(id, authorID string, input WorkInput) (WorkResult, error) {
	// Collections are keyed by author, so looking up another user's work id
	// lands on not-found; that is the ownership check.
	existing, err := uc.Works.FindByID(authorID, id)
	if err != nil {
		return WorkResult{}, err
	}
	if existing == nil {
		return failWork("work not found"), nil
	}

	previousGuides := existing.ReferencedGuideIDs
	updated, err := uc.Works.Update(authorID, id, func(w *works.Work) {
		w.Title = input.Title
		w.MediaType = input.MediaType
		w.MediaSource = input.MediaSource
		w.Summary = input.Summary
		w.Classifications = input.Classifications
		w.AIModels = input.AIModels
		w.Tags = input.Tags
		w.ReferencedGuideIDs = input.ReferencedGuideIDs
		w.ExternalLinks = ensureLinkIDs(input.ExternalLinks)
		enforceAIModelRule(w)
	})
	if err != nil {
		return WorkResult{}, err
	}
	if updated == nil {
		return failWork("work not found"), nil
	}

	if updated.IsPublic() {
		dropped := difference(previousGuides, updated.ReferencedGuideIDs)
		if err := uc.Citations.RemoveWorkFromGuides(updated.ID, dropped); err != nil {
			return WorkResult{}, err
		}
		if err := uc.Citations.AddWork(updated); err != nil {
			return WorkResult{}, err
		}
	}
	return WorkResult{Result: ok, Work: updated}, nil
}

// ToggleWorkVisibility flips public/private and keeps the citation index in
// step: going public registers the work with its referenced guides, going
// private withdraws it.
type ToggleWorkVisibility struct {
	Works     *repo.WorkRepository
	Citations *repo.CitationIndex
}

func (uc *ToggleWorkVisibility) Execute(id, authorID string) (WorkResult, error) {
	updated, err := uc.Works.ToggleVisibility(authorID, id)
	if err != nil {
		return WorkResult{}, err
	}
	if updated == nil {
		return failWork("work not found"), nil
	}
	if updated.IsPublic() {
		err = uc.Citations.AddWork(updated)
	} else {
		err = uc.Citations.RemoveWork(updated)
	}
	if err != nil {
		return WorkResult{}, err
	}
	return WorkResult{Result: ok, Work: updated}, nil
}

// SubmitWorkToContest stamps an owned work with a contest id. The contest
// must exist and be inside its submission window.
type SubmitWorkToContest struct {
	Works *repo.WorkRepository
	Now   func() time.Time // defaults to time.Now
}

func (uc *SubmitWorkToContest) Execute(id, authorID, contestID string) (WorkResult, error) {
	now := time.Now()
	if uc.Now != nil {
		now = uc.Now()
	}
	contest, found := contests.Find(contestID)
	if !found {
		return failWork("contest not found"), nil
	}
	if contest.ScheduleStatusAt(now) != contests.StatusSubmission {
		return failWork("contest is not accepting submissions"), nil
	}
	existing, err := uc.Works.FindByID(authorID, id)
	if err != nil {
		return WorkResult{}, err
	}
	if existing == nil {
		return failWork("work not found"), nil
	}
	updated, err := uc.Works.SubmitToContest(authorID, id, contestID)
	if err != nil {
		return WorkResult{}, err
	}
	return WorkResult{Result: ok, Work: updated}, nil
}

// enforceAIModelRule clears aiModels unless the AI-model classification is
// selected.
func enforceAIModelRule(w *works.Work) {
	if !w.HasAIModelClassification() {
		w.AIModels = []string{}
	}
}

func ensureLinkIDs(links []works.ExternalLink) []works.ExternalLink {
	for i := range links {
		if links[i].ID == "" {
			links[i].ID = uuid.NewString()
		}
	}
	return links
}

func difference(a, b []string) []string {
	var out []string
	for _, v := range a {
		present := false
		for _, w := range b {
			if v == w {
				present = true
				break
			}
		}
		if !present {
			out = append(out, v)
		}
	}
	return out
}
