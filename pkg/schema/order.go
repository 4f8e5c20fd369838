package schema

const OrderSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "order",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "customer_email", "type": "string"},
		{"name": "submitted_at", "type": "long"},
		{"name": "lines", "type": {"type": "array", "items": {
			"type": "record",
			"name": "order_line",
			"fields": [
				{"name": "product_id", "type": "string"},
				{"name": "sku", "type": "string"},
				{"name": "title", "type": "string"},
				{"name": "manufacturer", "type": "string"},
				{"name": "uom", "type": "string"},
				{"name": "quantity", "type": "int"}
			]
		}}}
	]
}`

type (
	OrderV1 struct {
		OrderID       string        `avro:"order_id"`
		CustomerEmail string        `avro:"customer_email"`
		SubmittedAt   int64         `avro:"submitted_at"`
		Lines         []OrderLineV1 `avro:"lines"`
	}

	OrderLineV1 struct {
		ProductID    string `avro:"product_id"`
		SKU          string `avro:"sku"`
		Title        string `avro:"title"`
		Manufacturer string `avro:"manufacturer"`
		UOM          string `avro:"uom"`
		Quantity     int    `avro:"quantity"`
	}
)
