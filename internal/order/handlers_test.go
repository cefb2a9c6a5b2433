package order_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-checkout/internal/gateway"
	"github.com/noah-isme/backend-checkout/internal/order"
)

func newHandler(stub *order.Service) *order.Handler {
	return &order.Handler{Svc: stub, Logger: zerolog.Nop()}
}

func TestCreateOrderEndpoint(t *testing.T) {
	stub := &stubGateway{order: gateway.Order{ID: "order_abc", AmountMinor: 4999, Currency: "INR"}}
	handler := newHandler(order.NewService(stub, "rzp_test_key", "INR"))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/create-order", strings.NewReader(`{"amount":49.99,"currency":"INR"}`))
	handler.Create(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		OrderID     string `json:"orderId"`
		AmountMinor int64  `json:"amount"`
		Currency    string `json:"currency"`
		KeyID       string `json:"keyId"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "order_abc", resp.OrderID)
	require.Equal(t, int64(4999), resp.AmountMinor)
	require.Equal(t, "INR", resp.Currency)
	require.Equal(t, "rzp_test_key", resp.KeyID)
}

func TestCreateOrderEndpointInvalidAmount(t *testing.T) {
	stub := &stubGateway{}
	handler := newHandler(order.NewService(stub, "rzp_test_key", "INR"))

	for _, body := range []string{`{"amount":0}`, `{"amount":-5}`, `{}`, `not json`} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/create-order", strings.NewReader(body))
		handler.Create(rr, req)
		require.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
	}
	require.Zero(t, stub.createCalls)
}

func TestCreateOrderEndpointGatewayFailure(t *testing.T) {
	stub := &stubGateway{createErr: &gateway.Error{Op: "create order", Message: "upstream 5xx"}}
	handler := newHandler(order.NewService(stub, "rzp_test_key", "INR"))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/create-order", strings.NewReader(`{"amount":1}`))
	handler.Create(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "GATEWAY_ERROR", resp.Error.Code)
	// Provider detail is logged server-side only, never echoed to the caller.
	require.NotContains(t, resp.Error.Message, "upstream 5xx")
}

// compile-time check that the stub satisfies the gateway contract
var _ gateway.Client = (*stubGateway)(nil)
