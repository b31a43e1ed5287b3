// Package voice defines the speech provider contracts and ships
// exec-backed implementations that shell out to system tools, plus no-op
// providers for running without audio.
package voice

import (
	"context"
	"errors"
	"log"
)

// ErrDisabled is returned by the no-op transcriber.
var ErrDisabled = errors.New("voice input disabled")

// Transcriber captures one utterance and returns its text. An empty
// string with a nil error means no speech was detected before timeout.
type Transcriber interface {
	Transcribe(ctx context.Context) (string, error)
}

// Speaker renders text as speech. Speak with blocking=false returns once
// playback has started; Stop cancels any in-flight speech.
type Speaker interface {
	Speak(text string, blocking bool) error
	Stop()
}

// NoOp implements both contracts for voiceless operation.
type NoOp struct {
	logger *log.Logger
}

// NewNoOp creates a no-op speech provider.
func NewNoOp(logger *log.Logger) *NoOp {
	return &NoOp{logger: logger}
}

// Transcribe reports that voice input is disabled.
func (n *NoOp) Transcribe(ctx context.Context) (string, error) {
	return "", ErrDisabled
}

// Speak does nothing.
func (n *NoOp) Speak(text string, blocking bool) error {
	n.logger.Printf("voice: would say %q", text)
	return nil
}

// Stop does nothing.
func (n *NoOp) Stop() {}
