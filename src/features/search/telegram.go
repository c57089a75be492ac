package search

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram caps messages at 4096 chars; leave headroom for the header line.
const telegramChunkSize = 3900

// TelegramHandler handles Telegram commands for the search feature.
type TelegramHandler struct {
	service *Service
}

// NewTelegramHandler creates a new Telegram handler for the search feature.
func NewTelegramHandler(service *Service) *TelegramHandler {
	return &TelegramHandler{service: service}
}

// HandleCommand processes search-related Telegram commands.
func (h *TelegramHandler) HandleCommand(bot *tgbotapi.BotAPI, chatID int64, command string, args string) error {
	switch command {
	case "lyrics":
		return h.handleLyrics(bot, chatID, args)
	default:
		bot.Send(tgbotapi.NewMessage(chatID, "❌ Unknown search command. Use /lyrics <song>"))
		return nil
	}
}

// GetCommands returns the available commands for this handler.
func (h *TelegramHandler) GetCommands() map[string]string {
	return map[string]string{
		"lyrics": "Search lyrics (/lyrics <song>, /lyrics <artist> - <song>, /lyrics <song> by <artist>)",
	}
}

// handleLyrics runs the search pipeline for the given query and replies
// with the lyrics, chunked to Telegram's message size limit.
func (h *TelegramHandler) handleLyrics(bot *tgbotapi.BotAPI, chatID int64, query string) error {
	if query == "" {
		bot.Send(tgbotapi.NewMessage(chatID, "Usage: /lyrics <song> or /lyrics <artist> - <song>"))
		return nil
	}

	result, err := h.service.Find(context.Background(), query)
	if err != nil {
		slog.Error("Telegram lyrics search failed", "query", query, "error", err)
		bot.Send(tgbotapi.NewMessage(chatID, "❌ Something went wrong, try again later"))
		return err
	}

	if !result.Found() {
		bot.Send(tgbotapi.NewMessage(chatID, "😔 No lyrics found for: "+query))
		return nil
	}

	for _, chunk := range chunkText(result.Text, telegramChunkSize) {
		if _, err := bot.Send(tgbotapi.NewMessage(chatID, chunk)); err != nil {
			slog.Error("Failed to send lyrics chunk", "error", err, "chat_id", chatID)
			return err
		}
	}
	return nil
}

// chunkText splits text into pieces of at most size bytes, preferring to
// break on line boundaries.
func chunkText(text string, size int) []string {
	var chunks []string
	for len(text) > size {
		cut := size
		for i := size; i > size/2; i-- {
			if text[i-1] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
