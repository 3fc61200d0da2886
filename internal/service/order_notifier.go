package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"gametop-backend/internal/model"
)

// OrderNotifier posts a rich embed to a Discord webhook whenever an order is
// dispatched, so the operator sees new orders without watching WhatsApp.
// Deliveries are fire-and-forget; failures are logged and swallowed.
type OrderNotifier struct {
	webhookURL string
	client     *http.Client
}

func NewOrderNotifier(webhookURL string) *OrderNotifier {
	if webhookURL == "" {
		return nil
	}
	return &OrderNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type discordEmbed struct {
	Title     string         `json:"title,omitempty"`
	Color     int            `json:"color,omitempty"`
	Fields    []discordField `json:"fields,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type discordWebhookPayload struct {
	Username string         `json:"username,omitempty"`
	Embeds   []discordEmbed `json:"embeds"`
}

// OrderPlaced announces a dispatched order.
func (n *OrderNotifier) OrderPlaced(gameName string, pkg model.TopUpPackage, draft *model.OrderDraft) {
	n.send(discordWebhookPayload{
		Username: "GameTop Orders",
		Embeds: []discordEmbed{{
			Title: fmt.Sprintf("🎮 طلب شحن جديد — %s", gameName),
			Color: 0x2ECC71,
			Fields: []discordField{
				{Name: "العرض", Value: pkg.Amount, Inline: true},
				{Name: "السعر", Value: fmt.Sprintf("%s %s", pkg.Price, pkg.Currency), Inline: true},
				{Name: "البريد", Value: draft.Email, Inline: false},
				{Name: "الدولة", Value: draft.Country, Inline: true},
				{Name: "المدينة", Value: draft.City, Inline: true},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func (n *OrderNotifier) send(payload discordWebhookPayload) {
	go func() {
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("[ORDER-WEBHOOK] marshal error: %v", err)
			return
		}
		resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("[ORDER-WEBHOOK] send error: %v", err)
			return
		}
		resp.Body.Close()
		if resp.StatusCode >= 400 {
			log.Printf("[ORDER-WEBHOOK] HTTP %d", resp.StatusCode)
		}
	}()
}
