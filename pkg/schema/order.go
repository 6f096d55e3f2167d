package schema

// Money fields travel as decimal strings so exact effective prices
// survive the wire; timestamps are unix milliseconds.
const OrderPlacedSchemaTextV1 = `{
	"type": "record",
	"namespace": "cammarket.orders",
	"name": "order_placed",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "user_id", "type": "string"},
		{"name": "tracking", "type": "string"},
		{"name": "status", "type": "string"},
		{"name": "subtotal", "type": "string"},
		{"name": "savings", "type": "string"},
		{"name": "delivery_fee", "type": "string"},
		{"name": "total", "type": "string"},
		{"name": "placed_at", "type": "long"},
		{"name": "lines", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "order_line",
				"fields": [
					{"name": "product_id", "type": "long"},
					{"name": "name", "type": "string"},
					{"name": "quantity", "type": "long"},
					{"name": "unit_price", "type": "string"}
				]
			}
		}}
	]
}`

type (
	OrderPlacedV1 struct {
		OrderID     string        `avro:"order_id"`
		UserID      string        `avro:"user_id"`
		Tracking    string        `avro:"tracking"`
		Status      string        `avro:"status"`
		Subtotal    string        `avro:"subtotal"`
		Savings     string        `avro:"savings"`
		DeliveryFee string        `avro:"delivery_fee"`
		Total       string        `avro:"total"`
		PlacedAt    int64         `avro:"placed_at"`
		Lines       []OrderLineV1 `avro:"lines"`
	}

	OrderLineV1 struct {
		ProductID int64  `avro:"product_id"`
		Name      string `avro:"name"`
		Quantity  int64  `avro:"quantity"`
		UnitPrice string `avro:"unit_price"`
	}
)

const OrderStatusSchemaTextV1 = `{
	"type": "record",
	"namespace": "cammarket.orders",
	"name": "order_status",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "tracking", "type": "string"},
		{"name": "status", "type": "string"}
	]
}`

type OrderStatusV1 struct {
	OrderID  string `avro:"order_id"`
	Tracking string `avro:"tracking"`
	Status   string `avro:"status"`
}
