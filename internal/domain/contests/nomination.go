package contests

import "time"

// Nomination records a judge putting a work forward for a contest category.
type Nomination struct {
	WorkID    string    `json:"workId"`
	Category  string    `json:"category"`
	JudgeID   string    `json:"judgeId"`
	CreatedAt time.Time `json:"createdAt"`
}
