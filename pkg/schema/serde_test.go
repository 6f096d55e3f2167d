package schema_test

import (
	"context"
	"testing"

	"github.com/cammarket/storefront/pkg/schema"
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

func TestSerdeOrderPlacedV1(t *testing.T) {

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeOrderPlacedV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeOrderPlacedV1(
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
			"DetermineID", t.Context(), subject, schema.OrderPlacedSchemaTextV1,
		).Return(schemaID, nil)

		_, err := schema.NewSerdeOrderPlacedV1(
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
			"DetermineID", t.Context(), subject, schema.OrderPlacedSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeOrderPlacedV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		orderValue1 := schema.OrderPlacedV1{
			OrderID:     "ORD-2026-0042",
			UserID:      "testUserID",
			Tracking:    "CAM2026000042",
			Status:      "processing",
			Subtotal:    "24000",
			Savings:     "6000",
			DeliveryFee: "2000",
			Total:       "26000",
			PlacedAt:    1756684800000,
			Lines: []schema.OrderLineV1{
				{ProductID: 1, Name: "Tecno Spark 20", Quantity: 3, UnitPrice: "8000"},
			},
		}

		encodedData, err := serde.Encode(orderValue1)
		require.NoError(t, err)

		var orderValue2 schema.OrderPlacedV1
		err = serde.Decode(encodedData, &orderValue2)
		require.NoError(t, err)

		assert.Equal(t, orderValue1.OrderID, orderValue2.OrderID)
		assert.Equal(t, orderValue1.UserID, orderValue2.UserID)
		assert.Equal(t, orderValue1.Tracking, orderValue2.Tracking)
		assert.Equal(t, orderValue1.Status, orderValue2.Status)
		assert.Equal(t, orderValue1.Subtotal, orderValue2.Subtotal)
		assert.Equal(t, orderValue1.Savings, orderValue2.Savings)
		assert.Equal(t, orderValue1.DeliveryFee, orderValue2.DeliveryFee)
		assert.Equal(t, orderValue1.Total, orderValue2.Total)
		assert.Equal(t, orderValue1.PlacedAt, orderValue2.PlacedAt)

		require.Len(t, orderValue2.Lines, len(orderValue1.Lines))
		for i, v := range orderValue2.Lines {
			assert.Equal(t, orderValue1.Lines[i], v)
		}
	})
}

func TestSerdeClientEventV1(t *testing.T) {
	schemaIdentifier := new(MockSchemaIdentifier)
	schemaID := 2
	subject := "testEvents-value"

	schemaIdentifier.On(
		"DetermineID", t.Context(), subject, schema.ClientEventSchemaTextV1,
	).Return(schemaID, nil)

	serde, err := schema.NewSerdeClientEventV1(
		t.Context(),
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaIdentifier),
	)
	require.NoError(t, err)

	eventValue1 := schema.ClientEventV1{
		EventID:   "testEventID",
		Kind:      "cart_add",
		UserID:    "testUserID",
		ProductID: 7,
		At:        1756684800000,
	}

	encodedData, err := serde.Encode(eventValue1)
	require.NoError(t, err)

	var eventValue2 schema.ClientEventV1
	err = serde.Decode(encodedData, &eventValue2)
	require.NoError(t, err)
	assert.Equal(t, eventValue1, eventValue2)
}

func TestSerdeOrderStatusV1(t *testing.T) {
	schemaIdentifier := new(MockSchemaIdentifier)
	schemaID := 3
	subject := "testStatus-value"

	schemaIdentifier.On(
		"DetermineID", t.Context(), subject, schema.OrderStatusSchemaTextV1,
	).Return(schemaID, nil)

	serde, err := schema.NewSerdeOrderStatusV1(
		t.Context(),
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaIdentifier),
	)
	require.NoError(t, err)

	statusValue1 := schema.OrderStatusV1{
		OrderID:  "ORD-2026-0042",
		Tracking: "CAM2026000042",
		Status:   "delivered",
	}

	encodedData, err := serde.Encode(statusValue1)
	require.NoError(t, err)

	var statusValue2 schema.OrderStatusV1
	err = serde.Decode(encodedData, &statusValue2)
	require.NoError(t, err)
	assert.Equal(t, statusValue1, statusValue2)
}
