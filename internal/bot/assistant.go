package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Responder turns a free-text request into a reply. Implemented by the
// secretary; tests substitute a canned function.
type Responder interface {
	Respond(ctx context.Context, userText string) (string, error)
}

const assistantWelcome = "🤖 Hi! I'm your personal secretary.\n\n" +
	"Just tell me what you need in plain language:\n" +
	"• \"Add an assignment for CS101 due Friday\"\n" +
	"• \"What's due this week?\"\n" +
	"• \"List my labs\"\n\n" +
	"Type /help to see this again."

// AssistantBot is the free-text alternative to the button-driven menu:
// every message goes through the responder instead of a state machine.
type AssistantBot struct {
	api       *tgbotapi.BotAPI
	responder Responder
}

// NewAssistantBot authenticates against the bot API and wraps a
// responder.
func NewAssistantBot(token string, responder Responder) (*AssistantBot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authenticating telegram bot: %w", err)
	}
	return &AssistantBot{api: api, responder: responder}, nil
}

// Run long-polls for updates until the context is cancelled.
func (b *AssistantBot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	log.Printf("assistant bot started as @%s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *AssistantBot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			b.reply(msg.Chat.ID, assistantWelcome)
		default:
			b.reply(msg.Chat.ID, "Unknown command. Just type what you need, or /help.")
		}
		return
	}
	if msg.Text == "" {
		return
	}

	// Typing indicator while the model and the databases are consulted.
	if _, err := b.api.Request(tgbotapi.NewChatAction(msg.Chat.ID, tgbotapi.ChatTyping)); err != nil {
		log.Printf("sending chat action: %v", err)
	}

	answer, err := b.responder.Respond(ctx, msg.Text)
	if err != nil {
		log.Printf("responding: %v", err)
		b.reply(msg.Chat.ID, "❌ Something went wrong. Please try again.")
		return
	}
	b.reply(msg.Chat.ID, answer)
}

func (b *AssistantBot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("sending message: %v", err)
	}
}
