package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	AssistantName string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	APITimeout    time.Duration
	MaxRetries    int

	DatabaseURL string
	DataDir     string

	ListenTimeout time.Duration
	STTCommand    string
	TTSCommand    string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string
	NotifyWhatsAppNumber string

	LocalTimezone *time.Location
}

// Load reads configuration values and prepares defaults where applicable.
func Load() *Config {
	_ = godotenv.Load()

	dataDir := os.Getenv("PIPOO_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Printf("config: cannot resolve home directory, using cwd: %v", err)
			home = "."
		}
		dataDir = filepath.Join(home, ".pipoo")
	}

	timezoneName := getenvDefault("LOCAL_TIMEZONE", "Local")
	location, err := time.LoadLocation(timezoneName)
	if err != nil {
		log.Printf("config: invalid LOCAL_TIMEZONE %q, defaulting to system local: %v", timezoneName, err)
		location = time.Local
	}

	return &Config{
		AssistantName: getenvDefault("ASSISTANT_NAME", "Pipoo"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   getenvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		APITimeout:    time.Duration(parseIntEnv("API_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxRetries:    parseIntEnv("API_MAX_RETRIES", 3),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DataDir:     dataDir,

		ListenTimeout: time.Duration(parseIntEnv("LISTEN_TIMEOUT_SECONDS", 8)) * time.Second,
		STTCommand:    os.Getenv("STT_COMMAND"),
		TTSCommand:    os.Getenv("TTS_COMMAND"),

		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		NotifyWhatsAppNumber: os.Getenv("NOTIFY_WHATSAPP_NUMBER"),

		LocalTimezone: location,
	}
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

func parseIntEnv(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("config: unable to parse %s=%q as int: %v", key, value, err)
		return def
	}
	return parsed
}
