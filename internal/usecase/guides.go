package usecase

import (
	"github.com/sirupsen/logrus"

	"animehub-backend/internal/domain/guides"
	"animehub-backend/internal/markdown"
	"animehub-backend/internal/repo"
	"animehub-backend/internal/search"
)

const excerptRunes = 120

// SaveGuideDraftInput carries the writable draft fields. The id identifies
// the article; the stored draft is replaced wholesale.
type SaveGuideDraftInput struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	Excerpt          string              `json:"excerpt"`
	Content          string              `json:"content"`
	ThumbnailPreview string              `json:"thumbnailPreview"`
	CitedGuides      []guides.CitedGuide `json:"citedGuides"`
}

type SaveGuideDraft struct {
	Drafts *repo.DraftRepository
	Index  *search.Index
}

func (uc *SaveGuideDraft) Execute(input SaveGuideDraftInput) (*guides.GuideDraft, error) {
	draft := &guides.GuideDraft{
		ID:               input.ID,
		Title:            input.Title,
		Excerpt:          input.Excerpt,
		Content:          input.Content,
		ThumbnailPreview: input.ThumbnailPreview,
		CitedGuides:      input.CitedGuides,
	}
	if draft.Excerpt == "" {
		draft.Excerpt = markdown.Excerpt(draft.Content, excerptRunes)
	}
	if err := uc.Drafts.Save(draft); err != nil {
		return nil, err
	}
	// Search stays best effort: a failed index write must not fail the save.
	if err := uc.Index.IndexDraft(draft); err != nil {
		logrus.WithError(err).WithField("draft", draft.ID).Warn("failed to index draft")
	}
	return draft, nil
}

type GetGuideDraft struct {
	Drafts *repo.DraftRepository
}

func (uc *GetGuideDraft) Execute(id string) (*guides.GuideDraft, error) {
	return uc.Drafts.FindByID(id)
}

type ListGuideDrafts struct {
	Drafts *repo.DraftRepository
}

func (uc *ListGuideDrafts) Execute() ([]*guides.GuideDraft, error) {
	return uc.Drafts.List()
}

type DeleteGuideDraft struct {
	Drafts *repo.DraftRepository
	Index  *search.Index
}

func (uc *DeleteGuideDraft) Execute(id string) error {
	if err := uc.Drafts.Delete(id); err != nil {
		return err
	}
	if err := uc.Index.Delete(id); err != nil {
		logrus.WithError(err).WithField("draft", id).Warn("failed to unindex draft")
	}
	return nil
}

// SaveGuideSettingsInput mirrors the settings record minus the timestamp.
type SaveGuideSettingsInput struct {
	ArticleID       string   `json:"articleId"`
	Category        string   `json:"category"`
	Classifications []string `json:"classifications"`
	AIModels        []string `json:"aiModels"`
	Tags            []string `json:"tags"`
	ContestTag      string   `json:"contestTag"`
}

type SaveGuideSettings struct {
	Settings *repo.SettingsRepository
}

func (uc *SaveGuideSettings) Execute(input SaveGuideSettingsInput) (*guides.GuideSettings, error) {
	settings := &guides.GuideSettings{
		ArticleID:       input.ArticleID,
		Category:        input.Category,
		Classifications: input.Classifications,
		AIModels:        input.AIModels,
		Tags:            input.Tags,
		ContestTag:      input.ContestTag,
	}
	if err := uc.Settings.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

type GetGuideSettings struct {
	Settings *repo.SettingsRepository
}

func (uc *GetGuideSettings) Execute(articleID string) (*guides.GuideSettings, error) {
	return uc.Settings.FindByArticleID(articleID)
}
