package guides

import "time"

// CitedGuide is a lightweight reference to another guide embedded in a draft.
type CitedGuide struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// GuideDraft is the in-progress content of a guide article. One draft per
// article id, overwritten wholesale on every save.
type GuideDraft struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Excerpt          string       `json:"excerpt"`
	Content          string       `json:"content"` // markdown
	ThumbnailPreview string       `json:"thumbnailPreview,omitempty"`
	CitedGuides      []CitedGuide `json:"citedGuides"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}
