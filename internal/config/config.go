package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds process configuration for the secretary. All values come
// from the environment; a .env file is honored when present.
type Config struct {
	TelegramToken string
	NotionToken   string

	AssignmentsDB string
	LabsDB        string
	ProjectsDB    string
	CoursesDB     string

	// AnthropicKey is only required by the assistant entrypoint.
	AnthropicKey string

	// HTTPTimeoutMs bounds every remote call against the hosted store.
	HTTPTimeoutMs int

	// MaxToolRounds caps the assistant's tool invocation loop.
	MaxToolRounds int

	// LogCalls enables remote-call event logging to stderr.
	LogCalls bool
}

// Default tunables. The original behavior had no timeout and no loop
// cap; both are deliberate additions.
const (
	DefaultHTTPTimeoutMs = 15000
	DefaultMaxToolRounds = 8
)

// Load reads configuration from the environment, optionally loading a
// .env file first. A missing .env file is not an error.
func Load(envFile string) *Config {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		NotionToken:   os.Getenv("NOTION_TOKEN"),
		AssignmentsDB: os.Getenv("ASSIGNMENTS_DB_ID"),
		LabsDB:        os.Getenv("LABS_DB_ID"),
		ProjectsDB:    os.Getenv("PROJECTS_DB_ID"),
		CoursesDB:     os.Getenv("COURSES_DB_ID"),
		AnthropicKey:  os.Getenv("ANTHROPIC_API_KEY"),
		HTTPTimeoutMs: DefaultHTTPTimeoutMs,
		MaxToolRounds: DefaultMaxToolRounds,
	}

	if v := os.Getenv("SECRETARY_HTTP_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeoutMs = n
		}
	}
	if v := os.Getenv("SECRETARY_MAX_TOOL_ROUNDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxToolRounds = n
		}
	}
	if v := os.Getenv("SECRETARY_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// Validate checks that every required value is present and reports all
// missing names at once. The process must not start the transport when
// this fails.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"TELEGRAM_BOT_TOKEN", c.TelegramToken},
		{"NOTION_TOKEN", c.NotionToken},
		{"ASSIGNMENTS_DB_ID", c.AssignmentsDB},
		{"LABS_DB_ID", c.LabsDB},
		{"PROJECTS_DB_ID", c.ProjectsDB},
		{"COURSES_DB_ID", c.CoursesDB},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateAssistant checks the extra requirements of the assistant
// entrypoint on top of Validate.
func (c *Config) ValidateAssistant() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.AnthropicKey == "" {
		return fmt.Errorf("missing required environment variables: ANTHROPIC_API_KEY")
	}
	return nil
}
