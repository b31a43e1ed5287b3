// Package intent classifies utterances into automation commands using
// ordered keyword triggers and dispatches them to category extractors.
// Classification is keyword presence testing, not general NLU: the first
// category with a trigger hit wins, and a category match whose sub-pattern
// fails falls through as "not a command" so the caller can escalate to the
// language model.
package intent

import (
	"log"
	"strings"
	"time"

	"github.com/pipoo-ai/pipoo/internal/store"
)

// Launcher starts applications, URLs and folders on the host OS.
type Launcher interface {
	OpenApp(name string) error
	OpenURL(rawURL string) error
	OpenFolder(path string) error
}

// Armer computes and stores a concrete trigger time for a reminder.
// The scheduler implements it.
type Armer interface {
	Arm(content, whenText string) (time.Time, error)
}

// Router matches utterances against the ordered route table.
type Router struct {
	notes     *store.NoteStore
	reminders *store.ReminderStore
	armer     Armer
	launcher  Launcher
	logger    *log.Logger
	now       func() time.Time
}

// New creates a router over the given collaborators.
func New(notes *store.NoteStore, reminders *store.ReminderStore, armer Armer, launcher Launcher, logger *log.Logger) *Router {
	return &Router{
		notes:     notes,
		reminders: reminders,
		armer:     armer,
		launcher:  launcher,
		logger:    logger,
		now:       time.Now,
	}
}

type route struct {
	triggers []string
	handle   func(r *Router, text string) (bool, string)
}

// routes is evaluated in order; the first category with any trigger
// present consumes the utterance, whether or not its extractor succeeds.
var routes = []route{
	{[]string{"open", "launch", "start"}, (*Router).handleOpen},
	{[]string{"search", "google"}, (*Router).handleSearch},
	{[]string{"play"}, (*Router).handlePlay},
	{[]string{"note", "write"}, (*Router).handleNote},
	{[]string{"remind", "reminder"}, (*Router).handleReminder},
	{[]string{"volume", "brightness", "wifi", "bluetooth"}, (*Router).handleSystem},
	{[]string{"folder", "directory"}, (*Router).handleFolder},
	{[]string{"time", "date", "day"}, (*Router).handleTime},
}

// DetectAndExecute reports whether text was recognized as a command and,
// if so, the response to show the user. (false, "") means the caller
// should fall through to the language model.
func (r *Router) DetectAndExecute(text string) (bool, string) {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, route := range routes {
		if containsAny(lower, route.triggers) {
			return route.handle(r, lower)
		}
	}
	return false, ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// cleanContent strips polite endings the speech recognizer tends to append.
func cleanContent(s string) string {
	s = strings.ReplaceAll(s, " please", "")
	s = strings.ReplaceAll(s, " thanks", "")
	return strings.TrimSpace(s)
}
