// Package scheduler runs the monthly rent generation job.
package scheduler

import (
	"context"
	"time"

	"rentdesk/internal/logger"
	"rentdesk/internal/services"
)

// RentScheduler fires the rent generation on the first of every month.
type RentScheduler struct {
	rents services.RentServicer
	now   func() time.Time
}

// New creates a scheduler around the rent service.
func New(rents services.RentServicer) *RentScheduler {
	return &RentScheduler{rents: rents, now: time.Now}
}

// Run blocks until ctx is cancelled, generating rent ledger entries at
// midnight on the first of each month. It also runs once at startup to
// backfill the current month, which is a no-op when entries already exist.
func (s *RentScheduler) Run(ctx context.Context) {
	s.generate(s.now())

	for {
		next := nextMonthStart(s.now())
		logger.Get().Infow("rent scheduler sleeping", "until", next.Format(time.RFC3339))

		timer := time.NewTimer(next.Sub(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Get().Info("rent scheduler stopped")
			return
		case <-timer.C:
			s.generate(next)
		}
	}
}

func (s *RentScheduler) generate(at time.Time) {
	result, err := s.rents.GenerateForAllAccounts(at)
	if err != nil {
		logger.Get().Errorw("monthly rent generation failed", "error", err)
		return
	}
	logger.Get().Infow("monthly rent generation complete",
		"month", result.Month.Format("2006-01"),
		"created", result.Created,
		"skipped", result.Skipped)
}

// nextMonthStart returns midnight on the first day of the month after t,
// in t's location.
func nextMonthStart(t time.Time) time.Time {
	year, month := t.Year(), t.Month()
	if month == time.December {
		year, month = year+1, time.January
	} else {
		month++
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}
