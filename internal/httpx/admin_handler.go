package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chaunsagold/storefront/internal/admin"
	"github.com/chaunsagold/storefront/internal/docs"
	kafkax "github.com/chaunsagold/storefront/internal/kafka"
	"github.com/chaunsagold/storefront/internal/orders"
	"github.com/chaunsagold/storefront/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type AdminHandler struct {
	Gate   *admin.Gate
	Ledger orders.Ledger
	Redis  *redis.Client // optional status cache
	// Status events go to the mirror too; optional.
	StatusProducer *kafkax.Producer
	Service        string
	Log            *zap.Logger
}

func (h *AdminHandler) Register(r *chi.Mux) {
	r.Post("/admin/login", h.login)
	r.Group(func(g chi.Router) {
		g.Use(h.requireAuth)
		g.Post("/admin/logout", h.logout)
		g.Get("/admin/orders", h.listOrders)
		g.Get("/admin/orders/export", h.export)
		g.Get("/admin/orders/{id}", h.getOrder)
		g.Put("/admin/orders/{id}/status", h.updateStatus)
		g.Delete("/admin/orders", h.wipe)
		g.Get("/admin/orders/{id}/invoice", h.invoice)
	})
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	// The login surface hides behind the same query flag the web client used;
	// without it there is no admin route at all.
	if r.URL.Query().Get("admin") != "1" {
		http.NotFound(w, r)
		return
	}
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	token, err := h.Gate.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AdminHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.Gate.Logout(bearerToken(r))
	w.WriteHeader(http.StatusNoContent)
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func (h *AdminHandler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Gate.Check(bearerToken(r)) {
			writeError(w, http.StatusUnauthorized, "admin session required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// parseFilter validates the ?status= filter; empty means All.
func parseFilter(r *http.Request) (string, error) {
	f := r.URL.Query().Get("status")
	if f == "" || f == orders.FilterAll || orders.Status(f).Valid() {
		return f, nil
	}
	return "", fmt.Errorf("unknown status %q", f)
}

func (h *AdminHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	all, err := h.Ledger.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	list := orders.FilterByStatus(all, filter)
	writeJSON(w, http.StatusOK, map[string]any{
		"orders":  list,
		"revenue": orders.TotalRevenue(list),
	})
}

func (h *AdminHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, ok, err := h.findOrder(ctx, orderID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	h.cacheStatus(ctx, o.ID, o.Status)
	writeJSON(w, http.StatusOK, o)
}

func (h *AdminHandler) findOrder(ctx context.Context, orderID string) (orders.Order, bool, error) {
	all, err := h.Ledger.List(ctx)
	if err != nil {
		return orders.Order{}, false, err
	}
	for _, o := range all {
		if o.ID == orderID {
			return o, true, nil
		}
	}
	return orders.Order{}, false, nil
}

// cacheStatus keeps the dashboard detail pane cheap; best-effort.
func (h *AdminHandler) cacheStatus(ctx context.Context, orderID string, s orders.Status) {
	if h.Redis == nil {
		return
	}
	key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	_ = h.Redis.Set(ctx, key, fmt.Sprintf(`{"status":%q}`, s), redisx.TTLStatusCache).Err()
}

type updateStatusReq struct {
	Status orders.Status `json:"status"`
}

func (h *AdminHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}
	orderID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if o, ok, _ := h.findOrder(ctx, orderID); ok && !orders.CanTransition(o.Status, req.Status) {
		// the dashboard allows this, but it is worth a trace
		h.Log.Warn("out-of-order status change",
			zap.String("order_id", orderID),
			zap.String("from", string(o.Status)),
			zap.String("to", string(req.Status)))
	}

	if err := h.Ledger.UpdateStatus(ctx, orderID, req.Status); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.cacheStatus(ctx, orderID, req.Status)
	h.publishStatus(orderID, req.Status)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) publishStatus(orderID string, s orders.Status) {
	if h.StatusProducer == nil {
		return
	}
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderStatusChanged,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		CorrelationID: orderID,
		Payload:       kafkax.MustMarshal(orders.OrderStatusChangedPayload{OrderID: orderID, Status: s}),
	}
	h.StatusProducer.Publish(orders.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderStatusChanged)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (h *AdminHandler) wipe(w http.ResponseWriter, r *http.Request) {
	// Destructive and irreversible; the caller must confirm explicitly.
	if r.URL.Query().Get("confirm") != "WIPE" {
		writeError(w, http.StatusBadRequest, "wipe requires confirm=WIPE")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	all, err := h.Ledger.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.Ledger.Clear(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.Log.Info("ledger wiped", zap.Int("removed", len(all)))
	if h.StatusProducer != nil {
		ev := orders.Envelope{
			EventID:      uuid.NewString(),
			EventType:    orders.EventLedgerWiped,
			EventVersion: 1,
			OccurredAt:   time.Now().UTC(),
			Producer:     h.Service,
			Payload:      kafkax.MustMarshal(orders.LedgerWipedPayload{Removed: len(all)}),
		}
		h.StatusProducer.Publish([]byte("ledger"), kafkax.MustMarshal(ev),
			kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventLedgerWiped)},
			kafkago.Header{Key: "x-event-version", Value: []byte("1")},
		)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) invoice(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	o, ok, err := h.findOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice_%s.pdf"`, o.ID))
	if err := docs.InvoicePDF(w, o); err != nil {
		h.Log.Error("invoice render failed", zap.String("order_id", o.ID), zap.Error(err))
	}
}

func (h *AdminHandler) export(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	all, err := h.Ledger.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	list := orders.FilterByStatus(all, filter)
	if len(list) == 0 {
		writeError(w, http.StatusNotFound, "no records to download")
		return
	}

	day := time.Now().Format("2006-01-02")
	switch r.URL.Query().Get("format") {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="chaunsa_database_export_%s.csv"`, day))
		err = docs.OrdersCSV(w, list)
	case "", "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="chaunsa_ledger_%s.pdf"`, day))
		err = docs.SummaryPDF(w, list, filterOrAll(filter))
	default:
		writeError(w, http.StatusBadRequest, "format must be pdf or csv")
		return
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		h.Log.Error("export render failed", zap.Error(err))
	}
}

func filterOrAll(f string) string {
	if f == "" {
		return orders.FilterAll
	}
	return f
}
