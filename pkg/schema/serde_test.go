package schema_test

import (
	"context"
	"testing"
	"time"

	"github.com/aqline/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func TestSerdeOrderV1(t *testing.T) {

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeOrderV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeOrderV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("IdentifierAndSubjectOpts", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.OrderSchemaTextV1,
		).Return(schemaID, nil)

		_, err := schema.NewSerdeOrderV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.OrderSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeOrderV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		orderValue1 := schema.OrderV1{
			OrderID:       "42",
			CustomerEmail: "buyer@example.com",
			SubmittedAt:   time.Now().UnixMilli(),
			Lines: []schema.OrderLineV1{
				{
					ProductID:    "100",
					SKU:          "SKU-100",
					Title:        "Tumbler",
					Manufacturer: "Steelite",
					UOM:          "EA",
					Quantity:     2,
				},
			},
		}

		encodedData, err := serde.Encode(orderValue1)
		require.NoError(t, err)

		var orderValue2 schema.OrderV1
		err = serde.Decode(encodedData, &orderValue2)
		require.NoError(t, err)

		assert.Equal(t, orderValue1.OrderID, orderValue2.OrderID)
		assert.Equal(t, orderValue1.CustomerEmail, orderValue2.CustomerEmail)
		assert.Equal(t, orderValue1.SubmittedAt, orderValue2.SubmittedAt)

		require.Len(t, orderValue2.Lines, len(orderValue1.Lines))
		for i, v := range orderValue2.Lines {
			assert.Equal(t, orderValue1.Lines[i], v)
		}
	})

	t.Run("EmptySubject", func(t *testing.T) {
		_, err := schema.NewSerdeOrderV1(
			t.Context(),
			schema.SubjectOpt(""),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
	})
}
