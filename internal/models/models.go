package models

import (
	"time"
)

// LoginKind is the event kind that marks a session-start signal.
// All other kind values are opaque to this service.
const LoginKind = "login"

// ActivityEvent is one immutable recorded occurrence of user activity.
// Events are append-only: there is no update or delete path.
type ActivityEvent struct {
	ID        string                 `json:"id"`
	OwnerID   string                 `json:"userId"`
	Kind      string                 `json:"type"`
	Payload   map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// CreateEventRequest is the body of POST /statistics.
type CreateEventRequest struct {
	OwnerID string                 `json:"userId"`
	Kind    string                 `json:"type"`
	Payload map[string]interface{} `json:"data,omitempty"`
}

// RecordLoginRequest is the body of POST /statistics/login.
type RecordLoginRequest struct {
	OwnerID string `json:"userId"`
}

// DashboardReport is the per-student composite assembled from local and
// remote counts. All counts default to zero under upstream outages.
type DashboardReport struct {
	LessonsCompleted int `json:"lessonsCompleted"`
	DaysActive       int `json:"daysActive"`
	WordsLearned     int `json:"wordsLearned"`
}

// RegistrationReport is the monthly user-registration breakdown from the
// users service. Month carries the resolved YYYY-MM label.
type RegistrationReport struct {
	Month       string `json:"month"`
	NewStudents int    `json:"newStudents"`
	NewTeachers int    `json:"newTeachers"`
	TotalNew    int    `json:"totalNew"`
}

// LessonReport is the monthly lesson breakdown from the lesson service.
type LessonReport struct {
	Month            string `json:"month"`
	TotalLessons     int    `json:"totalLessons"`
	CompletedLessons int    `json:"completedLessons"`
	CancelledLessons int    `json:"cancelledLessons"`
}

// LanguagePairCount is one entry of the translation statistics list,
// pre-sorted descending by count by the vocabulary service.
type LanguagePairCount struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Count  int    `json:"count"`
}

// LanguagePairSummary is a language pair projected for the platform report.
type LanguagePairSummary struct {
	Pair  string `json:"pair"`
	Count int    `json:"count"`
}

// PlatformActivity holds the locally derived platform counters.
type PlatformActivity struct {
	ActiveUsers int `json:"activeUsers"`
	TotalLogins int `json:"totalLogins"`
}

// PlatformReport is the platform-wide summary.
type PlatformReport struct {
	MonthlyUserGrowth RegistrationReport    `json:"monthlyUserGrowth"`
	MonthlyLessons    LessonReport          `json:"monthlyLessons"`
	TopLanguagePairs  []LanguagePairSummary `json:"topLanguagePairs"`
	PlatformActivity  PlatformActivity      `json:"platformActivity"`
}
