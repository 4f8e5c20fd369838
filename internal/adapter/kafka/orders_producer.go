package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
	"github.com/aqline/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.OrdersProducer = (*OrdersProducer)(nil)

// OrdersProducer publishes submitted orders for downstream sales
// tooling.
type OrdersProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewOrdersProducer(opts ...ProducerOpt) (OrdersProducer, error) {
	const op = "NewOrdersProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return OrdersProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return OrdersProducer{options.cl, options.encoder}, nil
}

func (p OrdersProducer) Close() {
	const op = "OrdersProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p OrdersProducer) ProduceOrder(
	ctx context.Context, order domain.Order,
) error {
	const op = "OrdersProducer.ProduceOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r, err := p.createRecord(order)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p OrdersProducer) createRecord(
	order domain.Order,
) (*kgo.Record, error) {
	const op = "OrdersProducer.createRecord"

	s := p.toSchema(order)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &kgo.Record{Key: []byte(s.OrderID), Value: v}, nil
}

func (OrdersProducer) toSchema(order domain.Order) (s schema.OrderV1) {
	s.OrderID = order.ID
	s.CustomerEmail = order.CustomerEmail
	s.SubmittedAt = order.SubmittedAt.UnixMilli()

	s.Lines = make([]schema.OrderLineV1, len(order.Lines))
	for i, l := range order.Lines {
		s.Lines[i] = schema.OrderLineV1{
			ProductID:    l.ProductID,
			SKU:          l.SKU,
			Title:        l.Title,
			Manufacturer: l.Manufacturer,
			UOM:          l.UOM,
			Quantity:     l.Quantity,
		}
	}
	return s
}
