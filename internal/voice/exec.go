package voice

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// CommandTranscriber runs an external speech-to-text command (whisper.cpp
// wrappers, OS dictation shims) and reads the transcript from stdout.
type CommandTranscriber struct {
	path   string
	args   []string
	logger *log.Logger
}

// NewCommandTranscriber wraps the given command line as a Transcriber.
func NewCommandTranscriber(logger *log.Logger, path string, args ...string) *CommandTranscriber {
	return &CommandTranscriber{path: path, args: args, logger: logger}
}

// Transcribe runs the command under ctx and returns the trimmed stdout.
// A deadline expiry reads as "no speech detected", not an error.
func (t *CommandTranscriber) Transcribe(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, t.path, t.args...)
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", nil
		}
		return "", fmt.Errorf("run %s: %w", t.path, err)
	}
	return strings.TrimSpace(out.String()), nil
}

// CommandSpeaker shells out to a system text-to-speech tool: say on
// macOS, espeak elsewhere, or whatever command the config overrides.
type CommandSpeaker struct {
	path   string
	args   []string
	logger *log.Logger

	mu      sync.Mutex
	current *exec.Cmd
}

// NewCommandSpeaker wraps the given command line as a Speaker. The text
// to speak is appended as the final argument.
func NewCommandSpeaker(logger *log.Logger, path string, args ...string) *CommandSpeaker {
	return &CommandSpeaker{path: path, args: args, logger: logger}
}

// NewSystemSpeaker picks the platform's default speech tool.
func NewSystemSpeaker(logger *log.Logger) *CommandSpeaker {
	switch runtime.GOOS {
	case "darwin":
		return NewCommandSpeaker(logger, "say")
	case "windows":
		return NewCommandSpeaker(logger, "powershell", "-Command",
			"Add-Type -AssemblyName System.Speech; (New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak($args[0])")
	default:
		return NewCommandSpeaker(logger, "espeak")
	}
}

// Speak renders text. With blocking=false it returns once the process has
// started; only one non-blocking utterance runs at a time, a new one
// replaces the old.
func (s *CommandSpeaker) Speak(text string, blocking bool) error {
	if text == "" {
		return nil
	}

	cmd := exec.Command(s.path, append(append([]string(nil), s.args...), text)...)

	if blocking {
		return cmd.Run()
	}

	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", s.path, err)
	}
	s.current = cmd
	go func() {
		if err := cmd.Wait(); err != nil {
			s.logger.Printf("voice: %s exited: %v", s.path, err)
		}
		s.mu.Lock()
		if s.current == cmd {
			s.current = nil
		}
		s.mu.Unlock()
	}()
	return nil
}

// Stop kills any in-flight non-blocking speech.
func (s *CommandSpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.Process != nil {
		if err := s.current.Process.Kill(); err != nil {
			s.logger.Printf("voice: stop speech: %v", err)
		}
		s.current = nil
	}
}
