package concierge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubClient struct {
	reply string
	err   error
}

func (s stubClient) Generate(ctx context.Context, userMessage string) (string, error) {
	return s.reply, s.err
}

func TestAskReturnsReply(t *testing.T) {
	c := New(stubClient{reply: "Try a saffron-mango lassi."}, zap.NewNop())
	assert.Equal(t, "Try a saffron-mango lassi.", c.Ask(context.Background(), "lassi recipe?"))
}

func TestAskFallsBackOnError(t *testing.T) {
	c := New(stubClient{err: errors.New("quota exceeded")}, zap.NewNop())
	assert.Equal(t, FallbackBusy, c.Ask(context.Background(), "anything"))
}

func TestAskFallsBackOnEmptyReply(t *testing.T) {
	c := New(stubClient{reply: "   \n"}, zap.NewNop())
	assert.Equal(t, FallbackEmpty, c.Ask(context.Background(), "anything"))
}

func TestDisabledClientAlwaysFallsBack(t *testing.T) {
	c := New(Disabled{}, zap.NewNop())
	assert.Equal(t, FallbackBusy, c.Ask(context.Background(), "anything"))
}
