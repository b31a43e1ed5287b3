// Package scheduler fires reminders at their trigger time. One cron job
// wakes every second, scans pending reminders, and invokes the registered
// callback exactly once per reminder.
package scheduler

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pipoo-ai/pipoo/internal/model"
	"github.com/pipoo-ai/pipoo/internal/store"
	"github.com/pipoo-ai/pipoo/internal/timeparse"
	"github.com/robfig/cron/v3"
)

// tolerance is how early a reminder may fire: anything due within the next
// two seconds counts as due on the current scan.
const tolerance = 2 * time.Second

// ErrPastTime is returned by Arm when the parsed time is not in the future.
var ErrPastTime = errors.New("time is in the past")

// Callback receives a fired reminder's content and original time phrase.
type Callback func(content, whenText string)

// Scheduler polls the reminder store once per second while running.
type Scheduler struct {
	cron      *cron.Cron
	reminders *store.ReminderStore
	callback  Callback
	logger    *log.Logger
	now       func() time.Time

	mu sync.Mutex // serializes scans so a slow callback cannot double-fire
}

// New creates a scheduler. The callback is fixed at construction time.
func New(reminders *store.ReminderStore, callback Callback, logger *log.Logger, loc *time.Location) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		reminders: reminders,
		callback:  callback,
		logger:    logger,
		now:       time.Now,
	}
}

// Start begins the poll loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@every 1s", s.scan); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the poll loop and waits for any in-flight scan to finish.
// After Stop returns no further callbacks will fire.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Arm parses whenText, rejects unparseable or past times, and persists the
// reminder so the poll loop picks it up. The returned time is the same
// value the poll loop will fire on, so confirmations restating it can
// never disagree with the actual firing time.
func (s *Scheduler) Arm(content, whenText string) (time.Time, error) {
	now := s.now()
	triggerTime, err := timeparse.Parse(whenText, now)
	if err != nil {
		return time.Time{}, err
	}
	if !triggerTime.After(now) {
		return time.Time{}, ErrPastTime
	}
	if _, err := s.reminders.Add(content, whenText, triggerTime); err != nil {
		return time.Time{}, fmt.Errorf("arm reminder: %w", err)
	}
	return triggerTime, nil
}

func (s *Scheduler) scan() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(tolerance)
	for _, reminder := range s.reminders.Due(cutoff) {
		// Persist the flag before notifying so a slow or failing
		// callback cannot cause a duplicate fire on the next scan.
		if err := s.reminders.MarkTriggered(reminder.ID); err != nil {
			s.logger.Printf("scheduler: mark triggered %d: %v", reminder.ID, err)
			continue
		}
		s.fire(reminder)
	}
}

func (s *Scheduler) fire(reminder model.Reminder) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("scheduler: reminder callback panicked: %v", r)
		}
	}()
	s.callback(reminder.Content, reminder.WhenText)
}
