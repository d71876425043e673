package contests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleStatusAt(t *testing.T) {
	contest := Contest{
		StartDate:              mustDate("2025-10-01"),
		EndDate:                mustDate("2025-10-25"),
		ReviewStartDate:        mustDate("2025-10-26"),
		ReviewEndDate:          mustDate("2025-10-31"),
		ResultAnnouncementDate: mustDate("2025-11-01"),
	}

	cases := []struct {
		name string
		now  string
		want ScheduleStatus
	}{
		{"before start", "2025-09-15T00:00:00Z", StatusUpcoming},
		{"mid submission", "2025-10-10T00:00:00Z", StatusSubmission},
		{"deadline day", "2025-10-25T18:00:00Z", StatusSubmission},
		{"mid review", "2025-10-28T00:00:00Z", StatusReview},
		{"after review ends", "2025-10-31T12:00:00Z", StatusAnnouncement},
		{"announcement day", "2025-11-01T09:00:00Z", StatusAnnouncement},
		{"after announcement", "2025-11-02T00:00:00Z", StatusEnded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now, err := time.Parse(time.RFC3339, tc.now)
			if err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, tc.want, contest.ScheduleStatusAt(now))
		})
	}
}

func TestCatalogFind(t *testing.T) {
	c, found := Find("contest-2025-autumn")
	assert.True(t, found)
	assert.Equal(t, "autumn2025", c.Tag)

	_, found = Find("no-such-contest")
	assert.False(t, found)
}
