package guides

import "time"

// GuideSettings holds the publish metadata of an article, stored separately
// from its draft. ArticleID matches a draft's id by convention only; there is
// no foreign-key enforcement.
type GuideSettings struct {
	ArticleID       string    `json:"articleId"`
	Category        string    `json:"category"`
	Classifications []string  `json:"classifications"`
	AIModels        []string  `json:"aiModels"`
	Tags            []string  `json:"tags"`
	ContestTag      string    `json:"contestTag"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
