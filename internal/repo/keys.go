package repo

// Storage key patterns, kept byte-compatible with the original client so a
// migrated dataset keeps working.
const (
	draftKeyPrefix     = "guide_draft_"
	settingsKeyPrefix  = "guide_settings_"
	userWorksKeyPrefix = "user_works_"
	citationsKeyPrefix = "guide_citations_"
	nominationsPrefix  = "judge_nominations_"
	sessionKey         = "animehub_user"
)

func draftKey(articleID string) string { return draftKeyPrefix + articleID }

func settingsKey(articleID string) string { return settingsKeyPrefix + articleID }

func userWorksKey(userID string) string { return userWorksKeyPrefix + userID }

func citationsKey(guideID string) string { return citationsKeyPrefix + guideID }

func nominationsKey(contestID string) string { return nominationsPrefix + contestID }
