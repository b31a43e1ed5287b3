package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pipoo-ai/pipoo/internal/assistant"
	"github.com/pipoo-ai/pipoo/internal/config"
	"github.com/pipoo-ai/pipoo/internal/database"
	"github.com/pipoo-ai/pipoo/internal/intent"
	"github.com/pipoo-ai/pipoo/internal/launcher"
	"github.com/pipoo-ai/pipoo/internal/llm"
	"github.com/pipoo-ai/pipoo/internal/notify"
	"github.com/pipoo-ai/pipoo/internal/scheduler"
	"github.com/pipoo-ai/pipoo/internal/store"
	"github.com/pipoo-ai/pipoo/internal/voice"
)

func main() {
	logger := log.New(os.Stdout, "[pipoo] ", log.LstdFlags)
	cfg := config.Load()

	db, err := database.New(cfg.DatabaseURL, cfg.DataDir, logger)
	if err != nil {
		logger.Fatalf("database init failed: %v", err)
	}

	notes := store.NewNoteStore(db, logger)
	reminders := store.NewReminderStore(db, logger)

	launch := launcher.New(logger)
	llmClient := llm.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.AssistantName,
		cfg.MaxRetries, cfg.APITimeout, logger)

	var stt voice.Transcriber = voice.NewNoOp(logger)
	if cfg.STTCommand != "" {
		parts := strings.Fields(cfg.STTCommand)
		stt = voice.NewCommandTranscriber(logger, parts[0], parts[1:]...)
	}
	var tts voice.Speaker = voice.NewSystemSpeaker(logger)
	if cfg.TTSCommand != "" {
		parts := strings.Fields(cfg.TTSCommand)
		tts = voice.NewCommandSpeaker(logger, parts[0], parts[1:]...)
	}

	surface := assistant.NewConsoleSurface(logger)
	whatsapp := notify.NewWhatsAppSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber)
	notifier := notify.New(whatsapp, cfg.NotifyWhatsAppNumber, logger)

	// The scheduler fires into the assistant, which routes back through
	// the scheduler when arming; the closure breaks the construction
	// cycle. asst is assigned before Start, so no callback sees nil.
	var asst *assistant.Assistant
	sched := scheduler.New(reminders, func(content, whenText string) {
		asst.OnReminder(content, whenText)
	}, logger, cfg.LocalTimezone)

	router := intent.New(notes, reminders, sched, launch, logger)
	asst = assistant.New(cfg, router, llmClient, stt, tts, surface, notifier, logger)

	if err := sched.Start(); err != nil {
		logger.Fatalf("scheduler start: %v", err)
	}

	asst.Welcome()

	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan struct{})
	go readLoop(ctx, asst, quit)

	waitForShutdown(quit, cancel, sched, asst, logger)
}

// readLoop feeds typed lines to the assistant. An empty line starts a
// voice interaction when a transcriber is configured.
func readLoop(ctx context.Context, asst *assistant.Assistant, quit chan<- struct{}) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			asst.Interact(ctx)
		case "/clear":
			asst.ClearConversation()
		case "/stop":
			asst.StopSpeaking()
		case "/quit", "/exit":
			close(quit)
			return
		default:
			asst.HandleUtterance(ctx, line)
		}
	}
	close(quit)
}

func waitForShutdown(quit <-chan struct{}, cancel context.CancelFunc, sched *scheduler.Scheduler, asst *assistant.Assistant, logger *log.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-quit:
	}
	logger.Println("shutting down...")

	cancel()
	sched.Stop()
	asst.StopSpeaking()
}
