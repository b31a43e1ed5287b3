package assistant

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pipoo-ai/pipoo/internal/config"
	"github.com/pipoo-ai/pipoo/internal/intent"
	"github.com/pipoo-ai/pipoo/internal/llm"
	"github.com/pipoo-ai/pipoo/internal/model"
	"github.com/pipoo-ai/pipoo/internal/notify"
	"github.com/pipoo-ai/pipoo/internal/scheduler"
	"github.com/pipoo-ai/pipoo/internal/store"
	"github.com/pipoo-ai/pipoo/internal/voice"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type surfaceLine struct {
	role Role
	text string
}

type recordingSurface struct {
	states []State
	lines  []surfaceLine
}

func (s *recordingSurface) SetState(state State) {
	s.states = append(s.states, state)
}

func (s *recordingSurface) AddLine(role Role, text string) {
	s.lines = append(s.lines, surfaceLine{role, text})
}

func newTestAssistant(t *testing.T, name string) (*Assistant, *recordingSurface) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_fk=1", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Note{}, &model.Reminder{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	lg := log.New(os.Stderr, "[test] ", log.LstdFlags)
	notes := store.NewNoteStore(db, lg)
	reminders := store.NewReminderStore(db, lg)
	sched := scheduler.New(reminders, func(string, string) {}, lg, time.UTC)

	cfg := &config.Config{AssistantName: "Pipoo", ListenTimeout: time.Second}
	llmClient := llm.New("", "", "gpt-4o-mini", cfg.AssistantName, 1, time.Second, lg)

	router := intent.New(notes, reminders, sched, noopLauncher{}, lg)
	noop := voice.NewNoOp(lg)
	surface := &recordingSurface{}
	notifier := notify.New(nil, "", lg)

	return New(cfg, router, llmClient, noop, noop, surface, notifier, lg), surface
}

type noopLauncher struct{}

func (noopLauncher) OpenApp(string) error    { return nil }
func (noopLauncher) OpenURL(string) error    { return nil }
func (noopLauncher) OpenFolder(string) error { return nil }

func TestGreetingByTimeOfDay(t *testing.T) {
	t.Parallel()

	a, _ := newTestAssistant(t, "greeting")

	cases := map[int]string{
		8:  "Good morning",
		14: "Good afternoon",
		21: "Good evening",
	}
	for hour, want := range cases {
		a.now = func() time.Time {
			return time.Date(2024, time.June, 5, hour, 0, 0, 0, time.UTC)
		}
		got := a.Greeting()
		if !strings.Contains(got, want) {
			t.Fatalf("Greeting at %d:00 = %q, want %q", hour, got, want)
		}
		if !strings.Contains(got, "Pipoo") {
			t.Fatalf("Greeting %q does not introduce the assistant", got)
		}
	}
}

func TestHandleUtteranceCommand(t *testing.T) {
	t.Parallel()

	a, surface := newTestAssistant(t, "command")

	resp := a.HandleUtterance(context.Background(), "what time is it")
	if !strings.Contains(resp, "The current time is") {
		t.Fatalf("response %q is not a time answer", resp)
	}

	if len(surface.lines) != 2 {
		t.Fatalf("surface saw %d lines, want user and assistant", len(surface.lines))
	}
	if surface.lines[0].role != RoleUser || surface.lines[0].text != "what time is it" {
		t.Fatalf("first surface line = %+v", surface.lines[0])
	}
	if surface.lines[1].role != RoleAssistant || surface.lines[1].text != resp {
		t.Fatalf("second surface line = %+v", surface.lines[1])
	}

	// A recognized command never goes to the language model.
	for _, state := range surface.states {
		if state == StateThinking {
			t.Fatal("command path entered the thinking state")
		}
	}
}

func TestHandleUtteranceFallsBackToModel(t *testing.T) {
	t.Parallel()

	a, surface := newTestAssistant(t, "fallback")

	resp := a.HandleUtterance(context.Background(), "tell me a joke")
	if !strings.Contains(resp, "not configured") {
		t.Fatalf("response %q, want unconfigured model hint", resp)
	}

	var thought bool
	for _, state := range surface.states {
		if state == StateThinking {
			thought = true
		}
	}
	if !thought {
		t.Fatal("fallback path never entered the thinking state")
	}
}

func TestWelcome(t *testing.T) {
	t.Parallel()

	a, surface := newTestAssistant(t, "welcome")
	a.now = func() time.Time {
		return time.Date(2024, time.June, 5, 8, 0, 0, 0, time.UTC)
	}

	a.Welcome()

	if len(surface.lines) != 3 {
		t.Fatalf("Welcome published %d lines, want 3", len(surface.lines))
	}
	if !strings.Contains(surface.lines[0].text, "Good morning") {
		t.Fatalf("Welcome greeting = %q", surface.lines[0].text)
	}
	if len(surface.states) == 0 || surface.states[len(surface.states)-1] != StateIdle {
		t.Fatalf("Welcome left states %v, want trailing idle", surface.states)
	}
}

func TestOnReminderReachesSurface(t *testing.T) {
	t.Parallel()

	a, surface := newTestAssistant(t, "on_reminder")

	a.OnReminder("drink water", "in 10 minutes")

	if len(surface.lines) != 1 {
		t.Fatalf("surface saw %d lines, want 1", len(surface.lines))
	}
	line := surface.lines[0]
	if line.role != RoleSystem || !strings.Contains(line.text, "drink water") || !strings.Contains(line.text, "in 10 minutes") {
		t.Fatalf("reminder line = %+v", line)
	}
}
