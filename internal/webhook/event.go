package webhook

// Event kinds given explicit handling. Any other kind is accepted and
// ignored so new gateway event types never fail the request.
const (
	KindPaymentCaptured = "payment.captured"
	KindPaymentFailed   = "payment.failed"
	KindOrderPaid       = "order.paid"
)

// Event is a gateway-pushed notification. The payload carries the entity
// matching the event kind.
type Event struct {
	ID      string  `json:"id"`
	Kind    string  `json:"event"`
	Payload Payload `json:"payload"`
}

// Payload wraps the kind-specific entity.
type Payload struct {
	Payment *PaymentWrapper `json:"payment,omitempty"`
	Order   *OrderWrapper   `json:"order,omitempty"`
}

// PaymentWrapper holds a payment entity.
type PaymentWrapper struct {
	Entity PaymentEntity `json:"entity"`
}

// OrderWrapper holds an order entity.
type OrderWrapper struct {
	Entity OrderEntity `json:"entity"`
}

// PaymentEntity is the payment state pushed by the gateway.
type PaymentEntity struct {
	ID               string `json:"id"`
	OrderID          string `json:"order_id"`
	AmountMinor      int64  `json:"amount"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// OrderEntity is the order state pushed by the gateway.
type OrderEntity struct {
	ID          string `json:"id"`
	AmountMinor int64  `json:"amount"`
}
