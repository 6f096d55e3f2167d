package schema

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "cammarket.events",
	"name": "client_event",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "user_id", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "order_id", "type": "string"},
		{"name": "at", "type": "long"}
	]
}`

type ClientEventV1 struct {
	EventID   string `avro:"event_id"`
	Kind      string `avro:"kind"`
	UserID    string `avro:"user_id"`
	ProductID int64  `avro:"product_id"`
	OrderID   string `avro:"order_id"`
	At        int64  `avro:"at"`
}
