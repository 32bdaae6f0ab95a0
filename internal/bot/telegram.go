package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramBot adapts the router to the Telegram long-poll transport.
type TelegramBot struct {
	api    *tgbotapi.BotAPI
	router *Router
}

// NewTelegramBot authenticates against the bot API and wraps a router.
func NewTelegramBot(token string, router *Router) (*TelegramBot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authenticating telegram bot: %w", err)
	}
	return &TelegramBot{api: api, router: router}, nil
}

// Run long-polls for updates until the context is cancelled.
func (b *TelegramBot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	log.Printf("telegram bot started as @%s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *TelegramBot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		cq := update.CallbackQuery
		// Acknowledge first so the client stops its spinner even when
		// the handler takes a while.
		if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
			log.Printf("answering callback: %v", err)
		}
		reply := b.router.Handle(ctx, Event{
			ChatID:   cq.Message.Chat.ID,
			Callback: cq.Data,
		})
		b.send(cq.Message.Chat.ID, cq.Message.MessageID, reply)
	case update.Message != nil:
		msg := update.Message
		ev := Event{ChatID: msg.Chat.ID}
		if msg.IsCommand() {
			ev.Command = msg.Command()
		} else {
			ev.Text = msg.Text
		}
		reply := b.router.Handle(ctx, ev)
		b.send(msg.Chat.ID, msg.MessageID, reply)
	}
}

func (b *TelegramBot) send(chatID int64, messageID int, reply Reply) {
	markup := toMarkup(reply.Keyboard)

	if reply.Edit {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, reply.Text, markup)
		if _, err := b.api.Send(edit); err != nil {
			log.Printf("editing message: %v", err)
		}
		return
	}

	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if len(reply.Keyboard) > 0 {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("sending message: %v", err)
	}
}

func toMarkup(keyboard [][]Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		var btns []tgbotapi.InlineKeyboardButton
		for _, b := range row {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		rows = append(rows, btns)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}
