package works

import "time"

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"

	MediaTypeImage = "image"
	MediaTypeVideo = "video"

	// ClassificationAIModel gates the aiModels field: a work may only carry
	// AI-model entries when this classification is selected.
	ClassificationAIModel = "AIモデル"
)

// ExternalLink points at a hosted copy of the work (video platforms mostly).
type ExternalLink struct {
	ID    string `json:"id"`
	Type  string `json:"type"` // youtube | vimeo | nicovideo | other
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Stats are denormalized engagement counters.
type Stats struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Views    int `json:"views"`
}

// Work is a submitted image or video, owned by exactly one author and stored
// in that author's per-user collection.
type Work struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	AuthorID           string         `json:"authorId"`
	AuthorName         string         `json:"authorName"`
	AuthorAvatar       string         `json:"authorAvatar,omitempty"`
	MediaType          string         `json:"mediaType"`
	MediaSource        string         `json:"mediaSource"`
	Summary            string         `json:"summary,omitempty"`
	Classifications    []string       `json:"classifications"`
	AIModels           []string       `json:"aiModels"`
	Tags               []string       `json:"tags"`
	ReferencedGuideIDs []string       `json:"referencedGuideIds"`
	IsHot              bool           `json:"isHot"`
	Visibility         string         `json:"visibility"`
	CreatedAt          time.Time      `json:"createdAt"`
	Stats              Stats          `json:"stats"`
	ContestID          string         `json:"contestId,omitempty"`
	ExternalLinks      []ExternalLink `json:"externalLinks,omitempty"`
}

// IsPublic reports whether the work is visible to other users.
func (w *Work) IsPublic() bool { return w.Visibility == VisibilityPublic }

// HasAIModelClassification reports whether the AI-model category is selected.
func (w *Work) HasAIModelClassification() bool {
	return containsString(w.Classifications, ClassificationAIModel)
}

// Normalize fills defaults for fields older stored records may be missing.
// Schema drift shim for hand-written seed data, not a business rule.
func (w *Work) Normalize() {
	if w.Visibility == "" {
		w.Visibility = VisibilityPublic
	}
	if w.MediaType == "" {
		w.MediaType = MediaTypeImage
	}
	if w.Classifications == nil {
		w.Classifications = []string{}
	}
	if w.AIModels == nil {
		w.AIModels = []string{}
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	if w.ReferencedGuideIDs == nil {
		w.ReferencedGuideIDs = []string{}
	}
}

// CitesGuide reports whether the work references the given guide.
func (w *Work) CitesGuide(guideID string) bool {
	return containsString(w.ReferencedGuideIDs, guideID)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
