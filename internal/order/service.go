package order

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/noah-isme/backend-checkout/internal/common"
	"github.com/noah-isme/backend-checkout/internal/gateway"
	"github.com/noah-isme/backend-checkout/internal/obs"
)

// Item is a cart line forwarded to the gateway as order notes. Lines are
// never cross-validated against the order amount.
type Item struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Request is the order-creation input from the storefront.
type Request struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency"`
	Items    []Item  `json:"items"`
}

// Handle is the public order reference handed back to the browser. The key id
// is safe to expose; the key secret never leaves the server.
type Handle struct {
	OrderID     string `json:"orderId"`
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
	KeyID       string `json:"keyId"`
}

// Service validates order requests and opens orders with the gateway.
type Service struct {
	Gateway         gateway.Client
	KeyID           string
	CurrencyDefault string

	validate *validator.Validate
	now      func() time.Time
}

// NewService constructs an order Service.
func NewService(gw gateway.Client, keyID, currencyDefault string) *Service {
	if currencyDefault == "" {
		currencyDefault = "INR"
	}
	return &Service{
		Gateway:         gw,
		KeyID:           keyID,
		CurrencyDefault: currencyDefault,
		validate:        validator.New(),
		now:             time.Now,
	}
}

// ToMinorUnits converts a major-unit amount to minor units (e.g. rupees to
// paise). Rounding is half-away-from-zero via math.Round; this service only
// targets 2-decimal currencies.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Create validates the request and opens a gateway order. Validation failures
// reject before any gateway call; gateway failures propagate without retry.
func (s *Service) Create(ctx context.Context, req Request) (Handle, error) {
	ctx, span := otel.Tracer("order.Service").Start(ctx, "OrderService.Create")
	defer span.End()

	result := "error"
	defer func() {
		if obs.OrderCreateTotal != nil {
			obs.OrderCreateTotal.WithLabelValues(result).Inc()
		}
	}()

	if err := s.validate.Struct(req); err != nil {
		result = "invalid"
		return Handle{}, common.NewAppError(common.CodeInvalidAmount, "Invalid amount", http.StatusBadRequest, err)
	}

	currency := req.Currency
	if currency == "" {
		currency = s.CurrencyDefault
	}
	amountMinor := ToMinorUnits(req.Amount)
	receipt := fmt.Sprintf("receipt_%d", s.now().UnixMilli())
	span.SetAttributes(
		attribute.Int64("order.amount_minor", amountMinor),
		attribute.String("order.currency", currency),
	)

	params := gateway.CreateOrderParams{
		AmountMinor: amountMinor,
		Currency:    currency,
		Receipt:     receipt,
	}
	if len(req.Items) > 0 {
		if encoded, err := json.Marshal(req.Items); err == nil {
			params.Notes = map[string]interface{}{"order_items": string(encoded)}
		}
	}

	created, err := s.Gateway.CreateOrder(ctx, params)
	if err != nil {
		span.RecordError(err)
		return Handle{}, err
	}

	result = "success"
	return Handle{
		OrderID:     created.ID,
		AmountMinor: created.AmountMinor,
		Currency:    created.Currency,
		KeyID:       s.KeyID,
	}, nil
}
