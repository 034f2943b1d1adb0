// Package checkout owns the validated transition from cart + customer info
// to a persisted order. The ledger append is the one side effect that must
// succeed; everything else (webhook, event mirror) is best-effort fan-out.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chaunsagold/storefront/internal/cart"
	"github.com/chaunsagold/storefront/internal/links"
	"github.com/chaunsagold/storefront/internal/notify"
	"github.com/chaunsagold/storefront/internal/orders"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInFlight rejects a second submission while one is still running for
	// the same session.
	ErrInFlight = errors.New("checkout already in progress")
)

// ValidationError names the first required field that was empty.
type ValidationError struct{ Field string }

func (e *ValidationError) Error() string { return e.Field + " is required" }

type Service struct {
	Ledger         orders.Ledger
	Notifiers      []notify.Notifier
	WhatsAppNumber string
	OrderEmail     string
	Log            *zap.Logger

	now func() time.Time

	mu       sync.Mutex
	inflight map[string]bool
}

func New(ledger orders.Ledger, notifiers []notify.Notifier, whatsAppNumber, orderEmail string, log *zap.Logger) *Service {
	return &Service{
		Ledger:         ledger,
		Notifiers:      notifiers,
		WhatsAppNumber: whatsAppNumber,
		OrderEmail:     orderEmail,
		Log:            log,
		now:            time.Now,
		inflight:       make(map[string]bool),
	}
}

// Result carries the persisted order plus the pre-built handoff links.
type Result struct {
	Order       orders.Order `json:"order"`
	WhatsAppURL string       `json:"whatsapp_url"`
	GmailURL    string       `json:"gmail_url"`
}

// Submit validates, assembles and persists the order, then fans out to the
// notifiers. On any error the cart is left untouched so the customer can
// retry; on success the cart is cleared.
func (s *Service) Submit(ctx context.Context, sessionID string, c *cart.Cart, info orders.CustomerInfo) (Result, error) {
	if err := validate(info); err != nil {
		return Result{}, err
	}
	items := c.Items()
	if len(items) == 0 {
		return Result{}, ErrEmptyCart
	}

	if !s.acquire(sessionID) {
		return Result{}, ErrInFlight
	}
	defer s.release(sessionID)

	now := s.now().UTC()
	o := orders.Order{
		ID:        orders.NewOrderID(now),
		Customer:  info,
		Total:     0,
		Timestamp: now,
		Status:    orders.StatusPending,
	}
	for _, l := range items {
		o.Items = append(o.Items, orders.OrderItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Unit:      l.Product.Unit,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
		})
		o.Total += l.Product.Price * l.Quantity
	}

	if err := s.Ledger.Append(ctx, o); err != nil {
		return Result{}, fmt.Errorf("persist order: %w", err)
	}

	s.Log.Info("order submitted",
		zap.String("order_id", o.ID),
		zap.Int("total", o.Total),
		zap.Int("lines", len(o.Items)))

	// Fan out off the request path. The notifiers swallow their own errors;
	// WithoutCancel keeps them alive past the HTTP response.
	for _, n := range s.Notifiers {
		go n.NotifyOrder(context.WithoutCancel(ctx), o)
	}

	c.Clear()

	return Result{
		Order:       o,
		WhatsAppURL: links.WhatsAppOrderURL(s.WhatsAppNumber, o),
		GmailURL:    links.GmailComposeURL(s.OrderEmail, o),
	}, nil
}

func validate(info orders.CustomerInfo) error {
	switch {
	case strings.TrimSpace(info.Name) == "":
		return &ValidationError{Field: "name"}
	case strings.TrimSpace(info.Phone) == "":
		return &ValidationError{Field: "phone"}
	case strings.TrimSpace(info.Address) == "":
		return &ValidationError{Field: "address"}
	}
	return nil
}

func (s *Service) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[sessionID] {
		return false
	}
	s.inflight[sessionID] = true
	return true
}

func (s *Service) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, sessionID)
}
