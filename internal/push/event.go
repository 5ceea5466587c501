// Package push maintains the persistent server update channel and turns
// inbound frames into typed change events for the UI to reconcile.
package push

import (
	"encoding/json"
	"fmt"
)

// Event is one server-originated change notification. The wire format is a
// wrapper {data, action, model}; the server-side consumer sometimes leaves
// the inner payload nested one level deeper, so parsing unwraps data.data
// when present.
type Event struct {
	Model  string
	Action string
	Data   map[string]any
}

// ParseEvent decodes a raw frame. A frame that is not a JSON object is
// malformed and must be dropped by the caller.
func ParseEvent(raw []byte) (Event, error) {
	var wrapper struct {
		Data   json.RawMessage `json:"data"`
		Action string          `json:"action"`
		Model  string          `json:"model"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return Event{}, fmt.Errorf("parse frame: %w", err)
	}

	event := Event{Model: wrapper.Model, Action: wrapper.Action}
	if len(wrapper.Data) > 0 {
		if err := json.Unmarshal(wrapper.Data, &event.Data); err != nil {
			return Event{}, fmt.Errorf("parse frame data: %w", err)
		}
	}
	if inner, ok := event.Data["data"].(map[string]any); ok {
		if event.Model == "" {
			event.Model = stringField(event.Data, "model")
		}
		if event.Action == "" {
			event.Action = stringField(event.Data, "action")
		}
		event.Data = inner
	}
	if event.Model == "" {
		event.Model = stringField(event.Data, "model")
	}
	return event, nil
}

// IsCart reports whether the event concerns the cart entity.
func (e Event) IsCart() bool {
	return e.Model == "cartOrder"
}

// IsProduct reports whether the event concerns a catalog product.
func (e Event) IsProduct() bool {
	return e.Model == "Product"
}

// IsOrder reports whether the event concerns an order, either by explicit
// model or by the presence of an order id plus a delivery status.
func (e Event) IsOrder() bool {
	if e.Model == "Order" {
		return true
	}
	return e.OrderID() != "" && e.DeliveryStatus() != ""
}

// OrderID returns the order identifier carried by the event, empty when
// absent.
func (e Event) OrderID() string {
	return scalarField(e.Data, "order_id")
}

// DeliveryStatus returns the order's new status, empty when absent.
func (e Event) DeliveryStatus() string {
	return stringField(e.Data, "delivery_status")
}

func stringField(data map[string]any, key string) string {
	value, _ := data[key].(string)
	return value
}

// scalarField stringifies string and numeric identifiers.
func scalarField(data map[string]any, key string) string {
	switch value := data[key].(type) {
	case string:
		return value
	case float64:
		return fmt.Sprintf("%.0f", value)
	default:
		return ""
	}
}
