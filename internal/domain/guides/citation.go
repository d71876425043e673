package guides

import "time"

// Citation is the summary of a work recorded in a guide's citation list.
// A work appears in the list iff it is public and names the guide in its
// referencedGuideIds.
type Citation struct {
	ID          string    `json:"id"` // work id
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	MediaType   string    `json:"mediaType"`
	MediaSource string    `json:"mediaSource"`
	CreatedAt   time.Time `json:"createdAt"`
}
