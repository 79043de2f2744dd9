package schema_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/jubilant/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/sr"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

type MockRegistryClient struct {
	mock.Mock
}

func (c *MockRegistryClient) CreateSchema(
	ctx context.Context, subject string, s sr.Schema,
) (sr.SubjectSchema, error) {
	args := c.Called(ctx, subject, s)
	return args.Get(0).(sr.SubjectSchema), args.Error(1)
}

func TestSerdeShortlistEventV1(t *testing.T) {
	const subject = "shortlist-events-value"

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeShortlistEventV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeShortlistEventV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("IdentifierError", func(t *testing.T) {
		si := new(MockSchemaIdentifier)
		idErr := errors.New("registry unavailable")
		si.On("DetermineID", t.Context(), subject, schema.ShortlistEventSchemaTextV1).
			Return(0, idErr)

		_, err := schema.NewSerdeShortlistEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(si),
		)
		assert.ErrorIs(t, err, idErr)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		si := new(MockSchemaIdentifier)
		si.On("DetermineID", t.Context(), subject, schema.ShortlistEventSchemaTextV1).
			Return(7, nil)

		serde, err := schema.NewSerdeShortlistEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(si),
		)
		require.NoError(t, err)

		v1 := schema.ShortlistEventV1{
			UserID:     "user-123",
			ProductID:  "cpu-102",
			Action:     "remove",
			Changed:    false,
			OccurredAt: time.UnixMilli(1760000000000).UTC(),
		}

		data, err := serde.Encode(v1)
		require.NoError(t, err)

		var v2 schema.ShortlistEventV1
		require.NoError(t, serde.Decode(data, &v2))

		assert.Equal(t, v1.UserID, v2.UserID)
		assert.Equal(t, v1.ProductID, v2.ProductID)
		assert.Equal(t, v1.Action, v2.Action)
		assert.Equal(t, v1.Changed, v2.Changed)
		assert.True(t, v1.OccurredAt.Equal(v2.OccurredAt))
		si.AssertExpectations(t)
	})
}

func TestSchemaCreater(t *testing.T) {
	cl := new(MockRegistryClient)
	cl.On("CreateSchema", t.Context(), "s-value", sr.Schema{
		Schema: schema.ShortlistEventSchemaTextV1,
		Type:   sr.TypeAvro,
	}).Return(sr.SubjectSchema{ID: 3}, nil)

	id, err := schema.NewSchemaCreater(cl).DetermineID(
		t.Context(), "s-value", schema.ShortlistEventSchemaTextV1,
	)
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}
