package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/chaunsagold/storefront/internal/orders"
	"go.uber.org/zap"
)

// SheetsNotifier mirrors orders into a spreadsheet webhook. The webhook
// answers with an opaque response, so there is no success signal to act on;
// every failure path ends in a log line and nothing else.
type SheetsNotifier struct {
	URL       string
	Recipient string
	Source    string
	Client    *http.Client
	Log       *zap.Logger
}

func NewSheetsNotifier(url, recipient, source string, log *zap.Logger) *SheetsNotifier {
	return &SheetsNotifier{
		URL:       url,
		Recipient: recipient,
		Source:    source,
		Client:    &http.Client{Timeout: 10 * time.Second},
		Log:       log,
	}
}

type sheetsPayload struct {
	orders.Order
	ItemSummary string `json:"itemSummary"`
	Action      string `json:"action"`
	Recipient   string `json:"recipient"`
	Source      string `json:"source"`
}

func (s *SheetsNotifier) NotifyOrder(ctx context.Context, o orders.Order) {
	if s.URL == "" {
		s.Log.Debug("sheets webhook not configured, skipping")
		return
	}

	body, err := json.Marshal(sheetsPayload{
		Order:       o,
		ItemSummary: ItemSummary(o),
		Action:      "NEW_ORDER",
		Recipient:   s.Recipient,
		Source:      s.Source,
	})
	if err != nil {
		s.Log.Warn("sheets payload encode failed", zap.String("order_id", o.ID), zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		s.Log.Warn("sheets request build failed", zap.String("order_id", o.ID), zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.Warn("sheets webhook failed", zap.String("order_id", o.ID), zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		s.Log.Warn("sheets webhook rejected", zap.String("order_id", o.ID), zap.Int("status", resp.StatusCode))
	}
}
