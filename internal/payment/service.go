package payment

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/noah-isme/backend-checkout/internal/common"
	"github.com/noah-isme/backend-checkout/internal/gateway"
	"github.com/noah-isme/backend-checkout/internal/obs"
	"github.com/noah-isme/backend-checkout/internal/signature"
)

// Confirmation is the client-side payment outcome forwarded by the browser
// after the gateway's hosted checkout completes.
type Confirmation struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// Details is the authoritative payment record fetched from the gateway.
type Details struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Method      string `json:"method"`
	CreatedAt   int64  `json:"created_at"`
}

// Result reports the outcome of verifying a confirmation. Verified with a nil
// Payment is the degraded-success case: the signature checked out but the
// detail fetch failed.
type Result struct {
	Verified bool
	Payment  *Details
}

// Service verifies client payment confirmations against the order secret.
type Service struct {
	Gateway     gateway.Client
	OrderSecret string
	Logger      zerolog.Logger
}

// Verify checks the confirmation signature and, on a match, enriches the
// result with the gateway's payment record. A signature mismatch is a
// business outcome (Verified=false, no error); a failed detail fetch after a
// matching signature still reports success with details absent.
func (s *Service) Verify(ctx context.Context, c Confirmation) (Result, error) {
	ctx, span := otel.Tracer("payment.Service").Start(ctx, "PaymentService.Verify")
	defer span.End()

	result := "error"
	defer func() {
		if obs.PaymentVerifyTotal != nil {
			obs.PaymentVerifyTotal.WithLabelValues(result).Inc()
		}
	}()

	if c.OrderID == "" || c.PaymentID == "" || c.Signature == "" {
		result = "missing_fields"
		return Result{}, common.NewAppError(common.CodeMissingFields, "Missing payment details", http.StatusBadRequest,
			errors.New("order id, payment id and signature are all required"))
	}
	span.SetAttributes(
		attribute.String("payment.order_id", c.OrderID),
		attribute.String("payment.id", c.PaymentID),
	)

	payload := signature.PaymentPayload(c.OrderID, c.PaymentID)
	if !signature.Verify(s.OrderSecret, payload, c.Signature) {
		result = "invalid_signature"
		s.Logger.Warn().
			Str("order_id", c.OrderID).
			Str("payment_id", c.PaymentID).
			Str("signature_preview", signature.Preview(c.Signature)).
			Msg("payment signature mismatch")
		return Result{Verified: false}, nil
	}

	fetched, err := s.Gateway.FetchPayment(ctx, c.PaymentID)
	if err != nil {
		result = "verified_degraded"
		s.Logger.Error().Err(err).
			Str("payment_id", c.PaymentID).
			Msg("payment verified but detail fetch failed")
		return Result{Verified: true}, nil
	}

	result = "verified"
	return Result{
		Verified: true,
		Payment: &Details{
			ID:          fetched.ID,
			OrderID:     fetched.OrderID,
			AmountMinor: fetched.AmountMinor,
			Currency:    fetched.Currency,
			Status:      fetched.Status,
			Method:      fetched.Method,
			CreatedAt:   fetched.CreatedAt,
		},
	}, nil
}
