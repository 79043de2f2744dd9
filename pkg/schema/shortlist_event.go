package schema

import "time"

const ShortlistEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "jubilant.shortlist",
	"name": "shortlist_event",
	"fields": [
		{"name": "user_id", "type": "string"},
		{"name": "product_id", "type": "string"},
		{
			"name": "action",
			"type": {"type": "enum", "name": "action", "symbols": ["add", "remove"]}
		},
		{"name": "changed", "type": "boolean"},
		{
			"name": "occurred_at",
			"type": {"type": "long", "logicalType": "timestamp-millis"}
		}
	]
}`

type ShortlistEventV1 struct {
	UserID     string    `avro:"user_id"`
	ProductID  string    `avro:"product_id"`
	Action     string    `avro:"action"`
	Changed    bool      `avro:"changed"`
	OccurredAt time.Time `avro:"occurred_at"`
}
