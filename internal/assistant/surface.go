package assistant

import "log"

// State is the assistant's externally visible activity.
type State string

const (
	StateIdle      State = "idle"
	StateListening State = "listening"
	StateThinking  State = "thinking"
	StateSpeaking  State = "speaking"
)

// Role tags a chat line for rendering.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleError     Role = "error"
)

// Surface receives presentation events. Implementations own whatever
// window or terminal the user is looking at; the assistant never touches
// it directly.
type Surface interface {
	SetState(state State)
	AddLine(role Role, text string)
}

// ConsoleSurface renders chat lines and state changes through the logger.
// It is the default surface when no graphical front end is attached.
type ConsoleSurface struct {
	logger *log.Logger
}

// NewConsoleSurface creates a console surface.
func NewConsoleSurface(logger *log.Logger) *ConsoleSurface {
	return &ConsoleSurface{logger: logger}
}

// SetState logs the state transition.
func (c *ConsoleSurface) SetState(state State) {
	c.logger.Printf("-- %s --", state)
}

// AddLine prints one chat line.
func (c *ConsoleSurface) AddLine(role Role, text string) {
	c.logger.Printf("[%s] %s", role, text)
}
