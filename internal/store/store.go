// Package store holds the ordered, persistent note and reminder
// collections. Display numbering is 1-based positional: deleting entry N
// shifts every later entry down by one.
package store

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pipoo-ai/pipoo/internal/model"
	"gorm.io/gorm"
)

// ErrOutOfRange is returned when a 1-based position does not refer to an
// existing record.
var ErrOutOfRange = errors.New("position out of range")

// NoteStore persists notes in insertion order.
type NoteStore struct {
	db     *gorm.DB
	logger *log.Logger
}

// NewNoteStore creates a note store over the shared database handle.
func NewNoteStore(db *gorm.DB, logger *log.Logger) *NoteStore {
	return &NoteStore{db: db, logger: logger}
}

// All returns every note in insertion order. A failing backing store reads
// as empty rather than surfacing an error to the caller.
func (s *NoteStore) All() []model.Note {
	var notes []model.Note
	if err := s.db.Order("id asc").Find(&notes).Error; err != nil {
		s.logger.Printf("store: list notes: %v", err)
		return nil
	}
	return notes
}

// Add appends a note and persists it before returning.
func (s *NoteStore) Add(content string) (model.Note, error) {
	note := model.Note{Content: content}
	if err := s.db.Create(&note).Error; err != nil {
		return model.Note{}, fmt.Errorf("save note: %w", err)
	}
	return note, nil
}

// DeleteAt removes the note at 1-based position n and returns it.
func (s *NoteStore) DeleteAt(n int) (model.Note, error) {
	notes := s.All()
	if n < 1 || n > len(notes) {
		return model.Note{}, ErrOutOfRange
	}
	note := notes[n-1]
	if err := s.db.Delete(&model.Note{}, note.ID).Error; err != nil {
		return model.Note{}, fmt.Errorf("delete note: %w", err)
	}
	return note, nil
}

// Clear removes every note and reports how many were removed.
func (s *NoteStore) Clear() (int, error) {
	count := len(s.All())
	if err := s.db.Where("1 = 1").Delete(&model.Note{}).Error; err != nil {
		return 0, fmt.Errorf("clear notes: %w", err)
	}
	return count, nil
}

// Count returns the number of stored notes.
func (s *NoteStore) Count() int {
	return len(s.All())
}

// ReminderStore persists reminders in insertion order and serves the
// scheduler's poll loop.
type ReminderStore struct {
	db     *gorm.DB
	logger *log.Logger
}

// NewReminderStore creates a reminder store over the shared database handle.
func NewReminderStore(db *gorm.DB, logger *log.Logger) *ReminderStore {
	return &ReminderStore{db: db, logger: logger}
}

// All returns every reminder in insertion order, empty on a failing store.
func (s *ReminderStore) All() []model.Reminder {
	var reminders []model.Reminder
	if err := s.db.Order("id asc").Find(&reminders).Error; err != nil {
		s.logger.Printf("store: list reminders: %v", err)
		return nil
	}
	return reminders
}

// Add appends a reminder armed for triggerTime and persists it.
func (s *ReminderStore) Add(content, whenText string, triggerTime time.Time) (model.Reminder, error) {
	reminder := model.Reminder{
		Content:     content,
		WhenText:    whenText,
		TriggerTime: &triggerTime,
	}
	if err := s.db.Create(&reminder).Error; err != nil {
		return model.Reminder{}, fmt.Errorf("save reminder: %w", err)
	}
	return reminder, nil
}

// DeleteAt removes the reminder at 1-based position n and returns it.
func (s *ReminderStore) DeleteAt(n int) (model.Reminder, error) {
	reminders := s.All()
	if n < 1 || n > len(reminders) {
		return model.Reminder{}, ErrOutOfRange
	}
	reminder := reminders[n-1]
	if err := s.db.Delete(&model.Reminder{}, reminder.ID).Error; err != nil {
		return model.Reminder{}, fmt.Errorf("delete reminder: %w", err)
	}
	return reminder, nil
}

// Clear removes every reminder and reports how many were removed.
func (s *ReminderStore) Clear() (int, error) {
	count := len(s.All())
	if err := s.db.Where("1 = 1").Delete(&model.Reminder{}).Error; err != nil {
		return 0, fmt.Errorf("clear reminders: %w", err)
	}
	return count, nil
}

// Count returns the number of stored reminders.
func (s *ReminderStore) Count() int {
	return len(s.All())
}

// Due returns pending reminders whose trigger time is at or before cutoff.
func (s *ReminderStore) Due(cutoff time.Time) []model.Reminder {
	var reminders []model.Reminder
	err := s.db.
		Where("triggered = ? AND trigger_time IS NOT NULL AND trigger_time <= ?", false, cutoff).
		Order("id asc").
		Find(&reminders).Error
	if err != nil {
		s.logger.Printf("store: due reminders: %v", err)
		return nil
	}
	return reminders
}

// MarkTriggered flips a reminder's triggered flag. The transition is
// one-way; nothing ever resets it.
func (s *ReminderStore) MarkTriggered(id uint) error {
	return s.db.Model(&model.Reminder{}).Where("id = ?", id).Update("triggered", true).Error
}
