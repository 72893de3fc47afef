package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/linguaverse/statistics-service/internal/logging"
	"github.com/linguaverse/statistics-service/internal/metrics"
	"github.com/linguaverse/statistics-service/internal/models"
)

// topLanguagePairLimit caps the language pairs shown on the platform report.
const topLanguagePairLimit = 3

// StudentDashboard assembles the per-student report from one remote lesson
// counter, one remote vocabulary counter, and the locally derived active-day
// count. The three sub-calls run concurrently and each resolves to zero on
// failure, so the composite always returns a well-formed report.
func (s *Service) StudentDashboard(ctx context.Context, studentID string) models.DashboardReport {
	timer := time.Now()
	defer func() {
		metrics.ReportDuration.WithLabelValues("dashboard").Observe(time.Since(timer).Seconds())
	}()

	var report models.DashboardReport
	var wg sync.WaitGroup
	wg.Add(3)

	go s.guarded(ctx, &wg, "completed_lessons", func() {
		report.LessonsCompleted = s.lessons.CompletedCount(ctx, studentID)
	})
	go s.guarded(ctx, &wg, "active_days", func() {
		report.DaysActive = s.ActiveDaysCount(ctx, studentID)
	})
	go s.guarded(ctx, &wg, "learned_words", func() {
		report.WordsLearned = s.vocabulary.LearnedWordsCount(ctx, studentID)
	})

	wg.Wait()
	return report
}

// guarded runs one sub-computation of a composite report, recovering a panic
// into the sub-computation's zero value so a single broken source can never
// take a report endpoint down.
func (s *Service) guarded(ctx context.Context, wg *sync.WaitGroup, name string, fn func()) {
	defer wg.Done()
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "report sub-computation panicked, using default value",
				logging.Target(name),
				logging.Error(fmt.Errorf("%v", r)),
			)
		}
	}()
	fn()
}

// UserRegistrationStats returns the registration breakdown for the selected
// month. An empty selector resolves to the current UTC month; a malformed
// selector returns models.ErrInvalidMonth. requestedBy is the gateway
// verified caller, recorded for auditability; role enforcement happens
// upstream.
func (s *Service) UserRegistrationStats(ctx context.Context, requestedBy, month string) (models.RegistrationReport, error) {
	win, err := models.ParseMonthWindow(month, time.Now())
	if err != nil {
		return models.RegistrationReport{}, fmt.Errorf("resolving registration report window: %w", err)
	}

	s.logger.InfoContext(ctx, "registration report requested",
		logging.Month(win.Label()),
		logging.OwnerID(requestedBy),
	)
	return s.users.RegistrationStats(ctx, win), nil
}

// LessonStats returns the lesson breakdown for the selected month, with the
// same month-selector semantics as UserRegistrationStats.
func (s *Service) LessonStats(ctx context.Context, requestedBy, month string) (models.LessonReport, error) {
	win, err := models.ParseMonthWindow(month, time.Now())
	if err != nil {
		return models.LessonReport{}, fmt.Errorf("resolving lesson report window: %w", err)
	}

	s.logger.InfoContext(ctx, "lesson report requested",
		logging.Month(win.Label()),
		logging.OwnerID(requestedBy),
	)
	return s.lessons.Stats(ctx, win), nil
}

// PlatformSummary assembles the platform-wide report from five concurrent
// sub-computations. Each sub-call is fail-soft on its own; a panic anywhere
// in the composite is recovered into the all-zero default report, so the
// summary endpoint never fails visibly.
func (s *Service) PlatformSummary(ctx context.Context) (report models.PlatformReport) {
	timer := time.Now()
	defer func() {
		metrics.ReportDuration.WithLabelValues("platform").Observe(time.Since(timer).Seconds())
	}()

	win := models.CurrentMonthWindow(time.Now())
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "platform summary panicked, returning default report",
				logging.Error(fmt.Errorf("%v", r)),
			)
			report = defaultPlatformReport(win)
		}
	}()

	report.MonthlyUserGrowth = models.RegistrationReport{Month: win.Label()}
	report.MonthlyLessons = models.LessonReport{Month: win.Label()}

	var pairs []models.LanguagePairCount
	var wg sync.WaitGroup
	wg.Add(5)

	go s.guarded(ctx, &wg, "registration_stats", func() {
		report.MonthlyUserGrowth = s.users.RegistrationStats(ctx, win)
	})
	go s.guarded(ctx, &wg, "lesson_stats", func() {
		report.MonthlyLessons = s.lessons.Stats(ctx, win)
	})
	go s.guarded(ctx, &wg, "language_pairs", func() {
		pairs = s.vocabulary.LanguagePairStats(ctx)
	})
	go s.guarded(ctx, &wg, "active_users", func() {
		report.PlatformActivity.ActiveUsers = s.ActiveUsersThisMonth(ctx)
	})
	go s.guarded(ctx, &wg, "total_logins", func() {
		report.PlatformActivity.TotalLogins = s.TotalLoginsThisMonth(ctx)
	})

	wg.Wait()
	report.TopLanguagePairs = topLanguagePairs(pairs)
	return report
}

// topLanguagePairs projects the first entries of the pre-sorted pair list,
// preserving the source order.
func topLanguagePairs(pairs []models.LanguagePairCount) []models.LanguagePairSummary {
	top := []models.LanguagePairSummary{}
	for i, p := range pairs {
		if i >= topLanguagePairLimit {
			break
		}
		top = append(top, models.LanguagePairSummary{
			Pair:  fmt.Sprintf("%s → %s", p.Source, p.Target),
			Count: p.Count,
		})
	}
	return top
}

func defaultPlatformReport(win models.MonthWindow) models.PlatformReport {
	return models.PlatformReport{
		MonthlyUserGrowth: models.RegistrationReport{Month: win.Label()},
		MonthlyLessons:    models.LessonReport{Month: win.Label()},
		TopLanguagePairs:  []models.LanguagePairSummary{},
	}
}
