// Package gateway is a thin call-through to the payment provider's order
// and payment APIs.
package gateway

import "context"

// CreateOrderParams carries the fields sent to the provider when opening an order.
type CreateOrderParams struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]interface{}
}

// Order is the normalised provider order handle.
type Order struct {
	ID          string
	AmountMinor int64
	Currency    string
	Receipt     string
}

// Payment is the normalised authoritative payment record held by the provider.
type Payment struct {
	ID          string
	OrderID     string
	AmountMinor int64
	Currency    string
	Status      string
	Method      string
	CreatedAt   int64
}

// Client abstracts the operations required from the upstream payment gateway.
type Client interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error)
	FetchPayment(ctx context.Context, paymentID string) (Payment, error)
}

// Error wraps an upstream gateway failure with the provider's message.
type Error struct {
	Op      string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return "gateway: " + e.Op + ": " + e.Message
	}
	return "gateway: " + e.Op
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
