package model

import "time"

// Note is a saved free-text note. Display numbers are derived from list
// position at render time; the primary key is never shown to the user.
type Note struct {
	ID        uint      `gorm:"primaryKey"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Reminder is a scheduled reminder. WhenText keeps the phrase the user
// spoke so confirmations and listings can echo it back. TriggerTime is
// always set by the creation flow; Triggered flips to true exactly once
// when the scheduler fires it.
type Reminder struct {
	ID          uint       `gorm:"primaryKey"`
	Content     string     `gorm:"type:text;not null"`
	WhenText    string     `gorm:"type:text;not null"`
	TriggerTime *time.Time `gorm:"index"`
	Triggered   bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}
