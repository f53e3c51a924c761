// Package queue defines message payloads exchanged over the message broker.
package queue

// ActivityRecordedEvent is published after a harvest activity has been
// stored. It carries the fields downstream consumers need for logging or
// analytics without querying the primary database. The harvest fields are
// untyped because the service stores them exactly as submitted.
type ActivityRecordedEvent struct {
	ActivityID  string `json:"activity_id"`
	FarmerName  any    `json:"farmer_name"`
	FlowerName  any    `json:"flower_name"`
	Kgs         any    `json:"kgs"`
	TotalAmount any    `json:"total_amount"`
	Rate        any    `json:"rate"`
	Date        any    `json:"date"`
	RecordedAt  string `json:"recorded_at"`
}

// OrderPlacedEvent is published after an order document has been stored.
type OrderPlacedEvent struct {
	OrderID  string `json:"order_id"`
	Order    any    `json:"order"`
	PlacedAt string `json:"placed_at"`
}
