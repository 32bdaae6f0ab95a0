package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DimitrisBelias/Personal-Secretary/internal/bot"
	"github.com/DimitrisBelias/Personal-Secretary/internal/config"
	"github.com/DimitrisBelias/Personal-Secretary/internal/llm"
	"github.com/DimitrisBelias/Personal-Secretary/internal/notion"
	"github.com/DimitrisBelias/Personal-Secretary/internal/secretary"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the top-level "secretary" command with the two
// bot entrypoints as subcommands.
func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "secretary",
		Short:         "Telegram front-end for university work tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "path to an env file (defaults to ./.env)")

	menu := &cobra.Command{
		Use:   "menu",
		Short: "Run the button-driven menu bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(envFile)
		},
	}
	assistant := &cobra.Command{
		Use:   "assistant",
		Short: "Run the free-text assistant bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssistant(envFile)
		},
	}

	root.AddCommand(menu, assistant)
	return root
}

func runMenu(envFile string) error {
	cfg := config.Load(envFile)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := newStore(cfg)
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("probing record store: %w", err)
	}

	tg, err := bot.NewTelegramBot(cfg.TelegramToken, bot.NewRouter(store))
	if err != nil {
		return err
	}
	if err := tg.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runAssistant(envFile string) error {
	cfg := config.Load(envFile)
	if err := cfg.ValidateAssistant(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := newStore(cfg)
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("probing record store: %w", err)
	}

	llmCfg := llm.LoadConfig()
	var llmObserver llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewClient(llmCfg, llmObserver)

	sec := secretary.New(llmClient, store, cfg.MaxToolRounds)
	tg, err := bot.NewAssistantBot(cfg.TelegramToken, sec)
	if err != nil {
		return err
	}
	if err := tg.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newStore(cfg *config.Config) *notion.Client {
	var observer notion.Observer = notion.NoopObserver{}
	if cfg.LogCalls {
		observer = notion.NewLogObserver(os.Stderr)
	}
	return notion.NewClient(notion.Config{
		Token:     cfg.NotionToken,
		TimeoutMs: cfg.HTTPTimeoutMs,
		Databases: notion.DatabaseIDs{
			Assignments: cfg.AssignmentsDB,
			Labs:        cfg.LabsDB,
			Projects:    cfg.ProjectsDB,
			Courses:     cfg.CoursesDB,
		},
	}, observer)
}
