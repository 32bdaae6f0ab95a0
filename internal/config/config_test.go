package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg-token")
	t.Setenv("NOTION_TOKEN", "notion-token")
	t.Setenv("ASSIGNMENTS_DB_ID", "db-a")
	t.Setenv("LABS_DB_ID", "db-l")
	t.Setenv("PROJECTS_DB_ID", "db-p")
	t.Setenv("COURSES_DB_ID", "db-c")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg := Load("")
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "tg-token", cfg.TelegramToken)
	assert.Equal(t, DefaultHTTPTimeoutMs, cfg.HTTPTimeoutMs)
	assert.Equal(t, DefaultMaxToolRounds, cfg.MaxToolRounds)
	assert.False(t, cfg.LogCalls)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SECRETARY_HTTP_TIMEOUT_MS", "5000")
	t.Setenv("SECRETARY_MAX_TOOL_ROUNDS", "3")
	t.Setenv("SECRETARY_LOG_CALLS", "true")

	cfg := Load("")
	assert.Equal(t, 5000, cfg.HTTPTimeoutMs)
	assert.Equal(t, 3, cfg.MaxToolRounds)
	assert.True(t, cfg.LogCalls)
}

func TestLoad_IgnoresInvalidOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SECRETARY_HTTP_TIMEOUT_MS", "not-a-number")
	t.Setenv("SECRETARY_MAX_TOOL_ROUNDS", "-1")

	cfg := Load("")
	assert.Equal(t, DefaultHTTPTimeoutMs, cfg.HTTPTimeoutMs)
	assert.Equal(t, DefaultMaxToolRounds, cfg.MaxToolRounds)
}

func TestValidate_ReportsAllMissing(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg-token")
	t.Setenv("NOTION_TOKEN", "")
	t.Setenv("ASSIGNMENTS_DB_ID", "db-a")
	t.Setenv("LABS_DB_ID", "")
	t.Setenv("PROJECTS_DB_ID", "")
	t.Setenv("COURSES_DB_ID", "db-c")

	err := Load("").Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTION_TOKEN")
	assert.Contains(t, err.Error(), "LABS_DB_ID")
	assert.Contains(t, err.Error(), "PROJECTS_DB_ID")
	assert.NotContains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
	assert.NotContains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestValidateAssistant_RequiresModelKey(t *testing.T) {
	setRequired(t)
	t.Setenv("ANTHROPIC_API_KEY", "")

	err := Load("").ValidateAssistant()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	assert.NoError(t, Load("").ValidateAssistant())
}
