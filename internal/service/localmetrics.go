package service

import (
	"context"
	"time"

	"github.com/linguaverse/statistics-service/internal/logging"
	"github.com/linguaverse/statistics-service/internal/models"
)

// utcDate is the layout for bucketing timestamps into UTC calendar dates.
const utcDate = "2006-01-02"

// ActiveDaysCount returns the number of distinct UTC calendar dates on which
// the owner logged in. Two logins on the same date count once; a session
// straddling midnight UTC counts as two days. Store errors resolve to 0 so
// dashboards stay available.
func (s *Service) ActiveDaysCount(ctx context.Context, ownerID string) int {
	events, err := s.repo.ListByOwnerAndKind(ctx, ownerID, models.LoginKind)
	if err != nil {
		s.logger.ErrorContext(ctx, "active days lookup failed, defaulting to zero",
			logging.OwnerID(ownerID),
			logging.Error(err),
		)
		return 0
	}

	days := map[string]struct{}{}
	for _, e := range events {
		days[e.CreatedAt.UTC().Format(utcDate)] = struct{}{}
	}
	return len(days)
}

// ActiveUsersThisMonth returns the number of distinct owners with at least
// one login event since the start of the current UTC month. No upper bound
// is applied; events timestamped in the future are a producer data-quality
// concern, not filtered here.
func (s *Service) ActiveUsersThisMonth(ctx context.Context) int {
	monthStart := models.CurrentMonthWindow(time.Now()).Start

	events, err := s.repo.ListByKind(ctx, models.LoginKind)
	if err != nil {
		s.logger.ErrorContext(ctx, "active users lookup failed, defaulting to zero",
			logging.Error(err),
		)
		return 0
	}

	owners := map[string]struct{}{}
	for _, e := range events {
		if !e.CreatedAt.Before(monthStart) {
			owners[e.OwnerID] = struct{}{}
		}
	}
	return len(owners)
}

// TotalLoginsThisMonth returns the raw count of login events since the start
// of the current UTC month. Repeat logins by one user all count, unlike
// ActiveUsersThisMonth.
func (s *Service) TotalLoginsThisMonth(ctx context.Context) int {
	monthStart := models.CurrentMonthWindow(time.Now()).Start

	count, err := s.repo.CountByKindSince(ctx, models.LoginKind, monthStart)
	if err != nil {
		s.logger.ErrorContext(ctx, "login count lookup failed, defaulting to zero",
			logging.Error(err),
		)
		return 0
	}
	return count
}

// CompletedLessonsCount proxies the lesson service counter for one student.
func (s *Service) CompletedLessonsCount(ctx context.Context, studentID string) int {
	return s.lessons.CompletedCount(ctx, studentID)
}

// LearnedWordsCount proxies the vocabulary service counter for one user.
func (s *Service) LearnedWordsCount(ctx context.Context, userID string) int {
	return s.vocabulary.LearnedWordsCount(ctx, userID)
}
