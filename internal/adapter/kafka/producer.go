package kafka

import (
	"context"
	"log/slog"

	"github.com/niksmo/jubilant/internal/core/domain"
	"github.com/niksmo/jubilant/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ShortlistEventsProducer = (*ShortlistEventsProducer)(nil)

// A ShortlistEventsProducer used for produce [domain.ShortlistEvent]
// keyed by user id, so one user's events keep their order.
type ShortlistEventsProducer struct {
	cl       ProducerClient
	encoder  Encoder
	opPrefix string
}

func NewShortlistEventsProducer(
	opts ...ProducerOpt,
) (ShortlistEventsProducer, error) {
	const op = "NewShortlistEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ShortlistEventsProducer{}, opErr(err, op)
		}
	}

	return ShortlistEventsProducer{
		cl:       options.cl,
		encoder:  options.encoder,
		opPrefix: "ShortlistEventsProducer",
	}, nil
}

func (p ShortlistEventsProducer) Close() {
	const op = "Close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p ShortlistEventsProducer) ProduceEvent(
	ctx context.Context, evt domain.ShortlistEvent,
) error {
	const op = "ProduceEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(evt)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func (p ShortlistEventsProducer) createRecord(
	evt domain.ShortlistEvent,
) (*kgo.Record, error) {
	const op = "createRecord"

	s := shortlistEventToSchemaV1(evt)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, p.opPrefix, op)
	}
	return &kgo.Record{Key: []byte(s.UserID), Value: b}, nil
}
