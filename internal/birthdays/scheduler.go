package birthdays

import (
	"iter"
	"slices"
	"time"

	"github.com/username/assistant-bot/internal/contacts"
	"github.com/username/assistant-bot/pkg/dateutil"
	"go.uber.org/zap"
)

// Window is the length of the reporting window in days: [today, today+Window)
const Window = 7

// Source is anything that can enumerate contact records
type Source interface {
	All() iter.Seq2[string, *contacts.Record]
}

// Report maps an English weekday name to the contacts celebrating on it.
// Only weekdays with at least one contact are present.
type Report map[string][]string

// Days returns the report keys in calendar order starting from today
func (r Report) Days(today time.Time) []string {
	days := make([]string, 0, len(r))
	for i := 0; i < Window; i++ {
		day := today.AddDate(0, 0, i).Weekday().String()
		if _, ok := r[day]; ok {
			days = append(days, day)
		}
	}
	return days
}

// Scheduler computes the upcoming birthdays report
type Scheduler struct {
	logger *zap.Logger
}

// NewScheduler creates a new birthday scheduler
func NewScheduler(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{logger: logger}
}

// Upcoming returns the contacts whose weekend-adjusted birthday falls within
// Window days of today, bucketed by weekday name. Time of day is ignored.
func (s *Scheduler) Upcoming(source Source, today time.Time) Report {
	today = dateutil.StartOfDay(today)
	report := make(Report)

	for name, record := range source.All() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}

		celebration := NextCelebration(birthday, today)
		delta := dateutil.DaysBetween(today, celebration)
		if delta < 0 || delta >= Window {
			s.logger.Debug("Birthday outside window",
				zap.String("name", name),
				zap.Time("celebration", celebration),
				zap.Int("delta_days", delta))
			continue
		}

		day := celebration.Weekday().String()
		report[day] = append(report[day], name)

		s.logger.Debug("Birthday scheduled",
			zap.String("name", name),
			zap.String("weekday", day),
			zap.Int("delta_days", delta))
	}

	for day := range report {
		slices.Sort(report[day])
	}

	s.logger.Info("Upcoming birthdays computed",
		zap.Time("today", today),
		zap.Int("days", len(report)))

	return report
}

// NextCelebration returns the date a birthday is celebrated on or after today:
// this year's anniversary, or next year's if it has already passed, moved off
// Saturday or Sunday to the following Monday.
func NextCelebration(birthday contacts.Birthday, today time.Time) time.Time {
	today = dateutil.StartOfDay(today)

	candidate := dateutil.AnniversaryIn(today.Year(), birthday.Month(), birthday.Day(), today.Location())
	if candidate.Before(today) {
		candidate = dateutil.AnniversaryIn(today.Year()+1, birthday.Month(), birthday.Day(), today.Location())
	}

	return dateutil.NextMonday(candidate)
}
