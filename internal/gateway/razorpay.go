package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/noah-isme/backend-checkout/internal/resilience"
)

// Razorpay implements Client against the Razorpay REST API through the
// official SDK. A circuit breaker guards both outbound operations; an open
// circuit fails fast without a provider round-trip.
type Razorpay struct {
	client  *razorpay.Client
	breaker *resilience.Breaker
}

// NewRazorpay constructs a Razorpay gateway client. The timeout applies per
// provider call; the SDK does not propagate request contexts, so cancellation
// is bounded by this deadline.
func NewRazorpay(keyID, keySecret string, timeout time.Duration, breaker *resilience.Breaker) *Razorpay {
	client := razorpay.NewClient(keyID, keySecret)
	if timeout > 0 {
		seconds := int16(timeout / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		client.SetTimeout(seconds)
	}
	return &Razorpay{client: client, breaker: breaker}
}

// CreateOrder opens an order with Razorpay. Amounts are already in minor units.
func (g *Razorpay) CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error) {
	if !g.allow(ctx) {
		return Order{}, &Error{Op: "create order", Message: "gateway unavailable", Err: resilience.ErrOpenCircuit}
	}
	data := map[string]interface{}{
		"amount":   params.AmountMinor,
		"currency": params.Currency,
		"receipt":  params.Receipt,
	}
	if len(params.Notes) > 0 {
		data["notes"] = params.Notes
	}
	payload, err := g.client.Order.Create(data, nil)
	g.report(ctx, err == nil)
	if err != nil {
		return Order{}, &Error{Op: "create order", Message: err.Error(), Err: err}
	}
	order := orderFromPayload(payload)
	if order.ID == "" {
		return Order{}, &Error{Op: "create order", Message: "provider response missing order id"}
	}
	return order, nil
}

// FetchPayment retrieves the authoritative payment record from Razorpay.
func (g *Razorpay) FetchPayment(ctx context.Context, paymentID string) (Payment, error) {
	if !g.allow(ctx) {
		return Payment{}, &Error{Op: "fetch payment", Message: "gateway unavailable", Err: resilience.ErrOpenCircuit}
	}
	payload, err := g.client.Payment.Fetch(paymentID, nil, nil)
	g.report(ctx, err == nil)
	if err != nil {
		return Payment{}, &Error{Op: "fetch payment", Message: err.Error(), Err: err}
	}
	payment := paymentFromPayload(payload)
	if payment.ID == "" {
		return Payment{}, &Error{Op: "fetch payment", Message: "provider response missing payment id"}
	}
	return payment, nil
}

func (g *Razorpay) allow(ctx context.Context) bool {
	if g.breaker == nil {
		return true
	}
	return g.breaker.Allow(ctx)
}

func (g *Razorpay) report(ctx context.Context, success bool) {
	if g.breaker == nil {
		return
	}
	g.breaker.Report(ctx, success)
}

func orderFromPayload(payload map[string]interface{}) Order {
	return Order{
		ID:          asString(payload, "id"),
		AmountMinor: asInt64(payload, "amount"),
		Currency:    asString(payload, "currency"),
		Receipt:     asString(payload, "receipt"),
	}
}

func paymentFromPayload(payload map[string]interface{}) Payment {
	return Payment{
		ID:          asString(payload, "id"),
		OrderID:     asString(payload, "order_id"),
		AmountMinor: asInt64(payload, "amount"),
		Currency:    asString(payload, "currency"),
		Status:      asString(payload, "status"),
		Method:      asString(payload, "method"),
		CreatedAt:   asInt64(payload, "created_at"),
	}
}

func asString(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

// asInt64 tolerates the numeric shapes the SDK's generic JSON decoding can
// produce for amount fields.
func asInt64(payload map[string]interface{}, key string) int64 {
	switch v := payload[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		n, err := v.Int64()
		if err == nil {
			return n
		}
		if f, ferr := v.Float64(); ferr == nil {
			return int64(f)
		}
		return 0
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
		return 0
	default:
		return 0
	}
}

// IsOpenCircuit reports whether the error originated from a refused call.
func IsOpenCircuit(err error) bool {
	return errors.Is(err, resilience.ErrOpenCircuit)
}
