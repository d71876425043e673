package contests

import "time"

// ScheduleStatus is the derived phase of a contest. Never persisted,
// recomputed on every read.
type ScheduleStatus string

const (
	StatusUpcoming     ScheduleStatus = "upcoming"
	StatusSubmission   ScheduleStatus = "submission"
	StatusReview       ScheduleStatus = "review"
	StatusAnnouncement ScheduleStatus = "announcement"
	StatusEnded        ScheduleStatus = "ended"
)

// ScheduleStatusAt classifies the contest's phase at the given instant.
// Each phase runs until the next one starts, so the day gap between the
// submission deadline and the review start still reads as submission.
// The announcement phase lasts through the announcement day itself.
func (c Contest) ScheduleStatusAt(now time.Time) ScheduleStatus {
	switch {
	case now.Before(c.StartDate):
		return StatusUpcoming
	case now.Before(c.ReviewStartDate):
		return StatusSubmission
	case now.Before(c.ReviewEndDate):
		return StatusReview
	case now.Before(c.ResultAnnouncementDate.Add(24 * time.Hour)):
		return StatusAnnouncement
	default:
		return StatusEnded
	}
}

// ScheduleStatus classifies the contest's phase right now.
func (c Contest) ScheduleStatus() ScheduleStatus {
	return c.ScheduleStatusAt(time.Now())
}
