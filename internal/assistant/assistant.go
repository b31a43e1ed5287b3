// Package assistant orchestrates one conversation turn: route the
// utterance through the intent router, fall back to the language model,
// and publish everything to the presentation surface.
package assistant

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pipoo-ai/pipoo/internal/config"
	"github.com/pipoo-ai/pipoo/internal/intent"
	"github.com/pipoo-ai/pipoo/internal/llm"
	"github.com/pipoo-ai/pipoo/internal/notify"
	"github.com/pipoo-ai/pipoo/internal/voice"
)

// Assistant coordinates the router, language model, speech providers and
// presentation surface.
type Assistant struct {
	cfg      *config.Config
	router   *intent.Router
	llm      *llm.Client
	stt      voice.Transcriber
	tts      voice.Speaker
	surface  Surface
	notifier *notify.Notifier
	logger   *log.Logger
	now      func() time.Time
}

// New wires an assistant from its collaborators.
func New(cfg *config.Config, router *intent.Router, llmClient *llm.Client, stt voice.Transcriber, tts voice.Speaker, surface Surface, notifier *notify.Notifier, logger *log.Logger) *Assistant {
	return &Assistant{
		cfg:      cfg,
		router:   router,
		llm:      llmClient,
		stt:      stt,
		tts:      tts,
		surface:  surface,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Welcome publishes the greeting and usage hints.
func (a *Assistant) Welcome() {
	a.surface.AddLine(RoleSystem, a.Greeting())
	a.surface.AddLine(RoleSystem, "I can open apps, search the web, create notes and reminders, and chat with you!")
	a.surface.AddLine(RoleSystem, "Try: 'Open YouTube', 'Search for cute cats', 'Remind me to stretch in 20 minutes'")
	a.surface.SetState(StateIdle)
}

// Greeting returns a time-of-day greeting.
func (a *Assistant) Greeting() string {
	hour := a.now().Hour()
	var timeOfDay string
	switch {
	case hour < 12:
		timeOfDay = "Good morning"
	case hour < 17:
		timeOfDay = "Good afternoon"
	default:
		timeOfDay = "Good evening"
	}
	return fmt.Sprintf("%s! I'm %s. How can I help you?", timeOfDay, a.cfg.AssistantName)
}

// HandleUtterance processes one piece of user text and returns the
// response shown to the user. Commands are tried first; anything
// unrecognized goes to the language model.
func (a *Assistant) HandleUtterance(ctx context.Context, text string) string {
	a.surface.AddLine(RoleUser, text)

	matched, response := a.router.DetectAndExecute(text)
	if !matched {
		a.surface.SetState(StateThinking)
		response = a.llm.Query(ctx, text)
	}

	a.surface.AddLine(RoleAssistant, response)
	return response
}

// Interact runs one listen, handle, speak cycle.
func (a *Assistant) Interact(ctx context.Context) {
	a.surface.SetState(StateListening)

	listenCtx, cancel := context.WithTimeout(ctx, a.cfg.ListenTimeout)
	text, err := a.stt.Transcribe(listenCtx)
	cancel()

	if err != nil {
		a.logger.Printf("assistant: transcribe: %v", err)
		a.surface.AddLine(RoleError, "Voice input isn't available right now.")
		a.surface.SetState(StateIdle)
		return
	}
	if text == "" {
		a.surface.AddLine(RoleSystem, "No speech detected. Please try again.")
		a.surface.SetState(StateIdle)
		return
	}

	response := a.HandleUtterance(ctx, text)

	a.surface.SetState(StateSpeaking)
	if err := a.tts.Speak(response, true); err != nil {
		a.logger.Printf("assistant: speak: %v", err)
	}
	a.surface.SetState(StateIdle)
}

// StopSpeaking cancels any in-flight speech output.
func (a *Assistant) StopSpeaking() {
	a.tts.Stop()
	a.surface.AddLine(RoleSystem, "Stopped")
	a.surface.SetState(StateIdle)
}

// ClearConversation forgets the language-model history and re-greets.
func (a *Assistant) ClearConversation() {
	a.llm.ClearHistory()
	a.Welcome()
}

// OnReminder is the scheduler callback: it surfaces, announces and
// delivers a fired reminder.
func (a *Assistant) OnReminder(content, whenText string) {
	a.surface.AddLine(RoleSystem, fmt.Sprintf("REMINDER: %s (set for %s)", content, whenText))
	a.notifier.Notify(a.cfg.AssistantName+" Reminder", content)
	if err := a.tts.Speak("Reminder! "+content, false); err != nil {
		a.logger.Printf("assistant: speak reminder: %v", err)
	}
}
