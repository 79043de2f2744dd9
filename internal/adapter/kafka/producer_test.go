package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/jubilant/internal/adapter/kafka"
	"github.com/niksmo/jubilant/internal/core/domain"
	"github.com/niksmo/jubilant/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type MockClient struct {
	mock.Mock
}

func (c *MockClient) ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	args := c.Called(ctx, rs)
	return args.Get(0).(kgo.ProduceResults)
}

func (c *MockClient) Close() {
	c.Called()
}

type MockEncoder struct {
	mock.Mock
}

func (e *MockEncoder) Encode(v any) ([]byte, error) {
	args := e.Called(v)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func testEvent() domain.ShortlistEvent {
	return domain.ShortlistEvent{
		UserID:     "user-123",
		ProductID:  "cpu-102",
		Action:     domain.ActionAdd,
		Changed:    true,
		OccurredAt: time.UnixMilli(1760000000000),
	}
}

func TestShortlistEventsProducer(t *testing.T) {
	t.Run("TooFewOptsPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = kafka.NewShortlistEventsProducer()
		})
	})

	t.Run("ProduceEvent", func(t *testing.T) {
		cl := new(MockClient)
		enc := new(MockEncoder)
		evt := testEvent()

		enc.On("Encode", schema.ShortlistEventV1{
			UserID:     evt.UserID,
			ProductID:  evt.ProductID,
			Action:     "add",
			Changed:    true,
			OccurredAt: evt.OccurredAt,
		}).Return([]byte("encoded"), nil)

		cl.On("ProduceSync", mock.Anything, mock.MatchedBy(func(rs []*kgo.Record) bool {
			return len(rs) == 1 &&
				string(rs[0].Key) == "user-123" &&
				string(rs[0].Value) == "encoded"
		})).Return(kgo.ProduceResults{{Record: &kgo.Record{}}})

		p, err := kafka.NewShortlistEventsProducer(
			kafka.ProducerRawClientOpt(cl),
			kafka.ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		require.NoError(t, p.ProduceEvent(t.Context(), evt))
		cl.AssertExpectations(t)
		enc.AssertExpectations(t)
	})

	t.Run("ProduceError", func(t *testing.T) {
		cl := new(MockClient)
		enc := new(MockEncoder)
		produceErr := errors.New("not leader")

		enc.On("Encode", mock.Anything).Return([]byte("encoded"), nil)
		cl.On("ProduceSync", mock.Anything, mock.Anything).
			Return(kgo.ProduceResults{{Err: produceErr}})

		p, err := kafka.NewShortlistEventsProducer(
			kafka.ProducerRawClientOpt(cl),
			kafka.ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		assert.ErrorIs(t, p.ProduceEvent(t.Context(), testEvent()), produceErr)
	})

	t.Run("EncodeError", func(t *testing.T) {
		cl := new(MockClient)
		enc := new(MockEncoder)
		encErr := errors.New("bad enum")
		enc.On("Encode", mock.Anything).Return(nil, encErr)

		p, err := kafka.NewShortlistEventsProducer(
			kafka.ProducerRawClientOpt(cl),
			kafka.ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		assert.ErrorIs(t, p.ProduceEvent(t.Context(), testEvent()), encErr)
		cl.AssertNotCalled(t, "ProduceSync", mock.Anything, mock.Anything)
	})

	t.Run("Close", func(t *testing.T) {
		cl := new(MockClient)
		cl.On("Close").Return()
		p, err := kafka.NewShortlistEventsProducer(
			kafka.ProducerRawClientOpt(cl),
			kafka.ProducerEncoderOpt(new(MockEncoder)),
		)
		require.NoError(t, err)
		p.Close()
		cl.AssertExpectations(t)
	})
}
