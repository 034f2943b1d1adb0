package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/chaunsagold/storefront/internal/cart"
	"github.com/chaunsagold/storefront/internal/catalog"
	"github.com/chaunsagold/storefront/internal/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockLedger is a testify mock of the orders.Ledger port.
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) List(ctx context.Context) ([]orders.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orders.Order), args.Error(1)
}

func (m *MockLedger) Append(ctx context.Context, o orders.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockLedger) UpdateStatus(ctx context.Context, orderID string, s orders.Status) error {
	args := m.Called(ctx, orderID, s)
	return args.Error(0)
}

func (m *MockLedger) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// recordingNotifier captures fan-out without a real collaborator.
type recordingNotifier struct {
	mu     sync.Mutex
	orders []orders.Order
	done   chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, 8)}
}

func (r *recordingNotifier) NotifyOrder(ctx context.Context, o orders.Order) {
	r.mu.Lock()
	r.orders = append(r.orders, o)
	r.mu.Unlock()
	r.done <- struct{}{}
}

func (r *recordingNotifier) wait(t *testing.T) orders.Order {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never called")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orders[len(r.orders)-1]
}

var validInfo = orders.CustomerInfo{Name: "Ali", Phone: "0300 1234567", Address: "House 1"}

func filledCart() *cart.Cart {
	c := cart.New()
	p := catalog.Product{ID: "1", Name: "Chaunsa Standard Box", Price: 1500, Unit: "4.5kg - 5kg Box"}
	c.Add(p)
	c.Add(p)
	return c
}

func newService(l orders.Ledger, n *recordingNotifier) *Service {
	s := New(l, nil, "923001234567", "orders@chaunsagold.pk", zap.NewNop())
	if n != nil {
		s.Notifiers = append(s.Notifiers, n)
	}
	return s
}

func TestSubmitExampleScenario(t *testing.T) {
	ledger := new(MockLedger)
	notifier := newRecordingNotifier()
	svc := newService(ledger, notifier)

	var stored orders.Order
	ledger.On("Append", mock.Anything, mock.AnythingOfType("orders.Order")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(orders.Order) }).
		Return(nil)

	c := filledCart()
	res, err := svc.Submit(context.Background(), "s1", c, validInfo)
	assert.NoError(t, err)

	assert.Equal(t, 3000, res.Order.Total)
	assert.Equal(t, orders.StatusPending, res.Order.Status)
	assert.Len(t, res.Order.Items, 1)
	assert.Equal(t, 2, res.Order.Items[0].Quantity)
	assert.NotEmpty(t, res.Order.ID)
	assert.Contains(t, res.WhatsAppURL, "wa.me/923001234567")
	assert.Contains(t, res.GmailURL, "mail.google.com")

	// the persisted order is the one returned
	assert.Equal(t, res.Order.ID, stored.ID)
	assert.Equal(t, 3000, stored.Total)

	// cart cleared on success
	assert.Empty(t, c.Items())

	// best-effort fan-out saw the same order
	got := notifier.wait(t)
	assert.Equal(t, res.Order.ID, got.ID)

	ledger.AssertExpectations(t)
}

func TestSubmitValidation(t *testing.T) {
	ledger := new(MockLedger)
	svc := newService(ledger, nil)

	cases := []struct {
		field string
		info  orders.CustomerInfo
	}{
		{"name", orders.CustomerInfo{Phone: "0300", Address: "House 1"}},
		{"phone", orders.CustomerInfo{Name: "Ali", Address: "House 1"}},
		{"address", orders.CustomerInfo{Name: "Ali", Phone: "0300"}},
		{"name", orders.CustomerInfo{Name: "   ", Phone: "0300", Address: "House 1"}},
	}
	for _, tc := range cases {
		c := filledCart()
		_, err := svc.Submit(context.Background(), "s1", c, tc.info)

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, "case %s", tc.field)
		assert.Equal(t, tc.field, verr.Field)
		assert.Len(t, c.Items(), 1, "cart must stay untouched")
	}
	// nothing was ever persisted
	ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubmitEmptyCart(t *testing.T) {
	ledger := new(MockLedger)
	svc := newService(ledger, nil)

	_, err := svc.Submit(context.Background(), "s1", cart.New(), validInfo)
	assert.ErrorIs(t, err, ErrEmptyCart)
	ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubmitLedgerFailureLeavesCart(t *testing.T) {
	ledger := new(MockLedger)
	notifier := newRecordingNotifier()
	svc := newService(ledger, notifier)

	ledger.On("Append", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	c := filledCart()
	_, err := svc.Submit(context.Background(), "s1", c, validInfo)
	assert.Error(t, err)
	assert.Len(t, c.Items(), 1, "cart must survive a failed submission")

	// no fan-out for an order that was never persisted
	select {
	case <-notifier.done:
		t.Fatal("notifier must not fire on ledger failure")
	case <-time.After(50 * time.Millisecond):
	}

	// the in-flight flag was released, retry goes through
	ledger.ExpectedCalls = nil
	ledger.On("Append", mock.Anything, mock.Anything).Return(nil)
	_, err = svc.Submit(context.Background(), "s1", c, validInfo)
	assert.NoError(t, err)
}

// blockingLedger holds Append open so a second submission can race it.
type blockingLedger struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingLedger) List(ctx context.Context) ([]orders.Order, error) { return nil, nil }
func (b *blockingLedger) Append(ctx context.Context, o orders.Order) error {
	b.entered <- struct{}{}
	<-b.release
	return nil
}
func (b *blockingLedger) UpdateStatus(ctx context.Context, id string, s orders.Status) error {
	return nil
}
func (b *blockingLedger) Clear(ctx context.Context) error { return nil }

func TestSubmitSingleInFlightPerSession(t *testing.T) {
	ledger := &blockingLedger{entered: make(chan struct{}, 4), release: make(chan struct{})}
	svc := New(ledger, nil, "923001234567", "orders@chaunsagold.pk", zap.NewNop())

	c := filledCart()
	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), "s1", c, validInfo)
		firstDone <- err
	}()
	<-ledger.entered // first submission is now mid-append

	_, err := svc.Submit(context.Background(), "s1", filledCart(), validInfo)
	assert.ErrorIs(t, err, ErrInFlight)

	// a different session is unaffected... once the shared ledger unblocks
	close(ledger.release)
	assert.NoError(t, <-firstDone)

	_, err = svc.Submit(context.Background(), "s2", filledCart(), validInfo)
	assert.NoError(t, err)
}

func TestOrderIDDerivedFromClock(t *testing.T) {
	ledger := new(MockLedger)
	ledger.On("Append", mock.Anything, mock.Anything).Return(nil)
	svc := newService(ledger, nil)
	svc.now = func() time.Time { return time.UnixMilli(1717171234567) }

	res, err := svc.Submit(context.Background(), "s1", filledCart(), validInfo)
	assert.NoError(t, err)
	assert.Equal(t, "CG-234567", res.Order.ID)
	assert.Equal(t, time.UnixMilli(1717171234567).UTC(), res.Order.Timestamp)
}
