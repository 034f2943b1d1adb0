package notify

import (
	"context"
	"time"

	kafkax "github.com/chaunsagold/storefront/internal/kafka"
	"github.com/chaunsagold/storefront/internal/orders"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

// KafkaNotifier publishes OrderSubmitted envelopes through the async
// producer, which already absorbs broker failures.
type KafkaNotifier struct {
	Producer *kafkax.Producer
	Service  string
}

func (n *KafkaNotifier) NotifyOrder(ctx context.Context, o orders.Order) {
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderSubmitted,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      n.Service,
		CorrelationID: o.ID,
		Payload: kafkax.MustMarshal(orders.OrderSubmittedPayload{
			Order:       o,
			ItemSummary: ItemSummary(o),
		}),
	}
	n.Producer.Publish(orders.PartitionKey(o.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderSubmitted)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
