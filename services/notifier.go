package services

import (
	"fmt"
	"log"

	"github.com/bhagatankit05/Restuarant-App/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier pings the staff Telegram chat when an order lands. A nil
// *Notifier is a no-op; failures are logged and never surfaced to the
// customer request.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(token string, chatID int64) *Notifier {
	if token == "" || chatID == 0 {
		return nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("telegram bot init failed, notifications disabled: %v", err)
		return nil
	}
	return &Notifier{api: api, chatID: chatID}
}

func (n *Notifier) OrderCreated(order *entity.Order) {
	if n == nil {
		return
	}
	text := fmt.Sprintf("🧾 New order %s: %d items, total %.2f",
		order.ID, len(order.Items), order.TotalAmount)
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		log.Printf("telegram notify failed for order %s: %v", order.ID, err)
	}
}
