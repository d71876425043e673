package contests

import "time"

// Contest is a static catalog entry. The catalog is hard-coded; contests are
// authored by operators, not by users.
type Contest struct {
	ID                     string    `json:"id"`
	Title                  string    `json:"title"`
	Description            string    `json:"description,omitempty"`
	Banner                 string    `json:"banner,omitempty"`
	Tag                    string    `json:"tag"`
	Categories             []string  `json:"categories"`
	StartDate              time.Time `json:"startDate"`
	EndDate                time.Time `json:"endDate"`
	ReviewStartDate        time.Time `json:"reviewStartDate"`
	ReviewEndDate          time.Time `json:"reviewEndDate"`
	ResultAnnouncementDate time.Time `json:"resultAnnouncementDate"`
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Catalog returns the static contest list.
func Catalog() []Contest {
	return []Contest{
		{
			ID:                     "contest-2025-autumn",
			Title:                  "秋のAIアート・コンテスト 2025",
			Description:            "AI生成イラスト・動画の秋季コンテスト。",
			Tag:                    "autumn2025",
			Categories:             []string{"イラスト", "動画", "AIモデル"},
			StartDate:              mustDate("2025-10-01"),
			EndDate:                mustDate("2025-10-25"),
			ReviewStartDate:        mustDate("2025-10-26"),
			ReviewEndDate:          mustDate("2025-10-31"),
			ResultAnnouncementDate: mustDate("2025-11-01"),
		},
		{
			ID:                     "contest-2026-winter",
			Title:                  "冬の創作フェス 2026",
			Description:            "テーマ「雪と光」。",
			Tag:                    "winter2026",
			Categories:             []string{"イラスト", "動画"},
			StartDate:              mustDate("2026-01-10"),
			EndDate:                mustDate("2026-02-10"),
			ReviewStartDate:        mustDate("2026-02-11"),
			ReviewEndDate:          mustDate("2026-02-20"),
			ResultAnnouncementDate: mustDate("2026-02-22"),
		},
	}
}

// Find returns the catalog contest with the given id.
func Find(id string) (Contest, bool) {
	for _, c := range Catalog() {
		if c.ID == id {
			return c, true
		}
	}
	return Contest{}, false
}
