package paystack

import "encoding/json"

// EventChargeSuccess is the only webhook event type that triggers
// reconciliation; everything else is acknowledged and ignored.
const EventChargeSuccess = "charge.success"

// Event is the gateway's webhook envelope.
type Event struct {
	Event string    `json:"event"`
	Data  EventData `json:"data"`
}

type EventData struct {
	Reference string          `json:"reference"`
	Status    string          `json:"status"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}
