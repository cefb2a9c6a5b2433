package payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-checkout/internal/common"
	"github.com/noah-isme/backend-checkout/internal/gateway"
	"github.com/noah-isme/backend-checkout/internal/payment"
	"github.com/noah-isme/backend-checkout/internal/signature"
)

const orderSecret = "order-secret"

type stubGateway struct {
	fetchCalls int
	payment    gateway.Payment
	fetchErr   error
}

func (s *stubGateway) CreateOrder(context.Context, gateway.CreateOrderParams) (gateway.Order, error) {
	return gateway.Order{}, errors.New("not implemented")
}

func (s *stubGateway) FetchPayment(_ context.Context, paymentID string) (gateway.Payment, error) {
	s.fetchCalls++
	if s.fetchErr != nil {
		return gateway.Payment{}, s.fetchErr
	}
	p := s.payment
	if p.ID == "" {
		p.ID = paymentID
	}
	return p, nil
}

func newService(stub *stubGateway) *payment.Service {
	return &payment.Service{Gateway: stub, OrderSecret: orderSecret, Logger: zerolog.Nop()}
}

func signedConfirmation(secret string) payment.Confirmation {
	c := payment.Confirmation{OrderID: "order_abc", PaymentID: "pay_xyz"}
	c.Signature = signature.Compute(secret, signature.PaymentPayload(c.OrderID, c.PaymentID))
	return c
}

func TestVerifyRejectsMissingFields(t *testing.T) {
	stub := &stubGateway{}
	svc := newService(stub)
	cases := []payment.Confirmation{
		{},
		{OrderID: "order_abc"},
		{OrderID: "order_abc", PaymentID: "pay_xyz"},
		{PaymentID: "pay_xyz", Signature: "sig"},
	}
	for _, c := range cases {
		_, err := svc.Verify(context.Background(), c)
		require.Error(t, err)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok)
		require.Equal(t, common.CodeMissingFields, appErr.Code)
	}
	require.Zero(t, stub.fetchCalls)
}

func TestVerifyTamperedSignatureNeverFetches(t *testing.T) {
	stub := &stubGateway{}
	svc := newService(stub)

	c := signedConfirmation(orderSecret)
	c.Signature = "0" + c.Signature[1:]

	result, err := svc.Verify(context.Background(), c)
	require.NoError(t, err, "a signature mismatch is a business outcome, not a system error")
	require.False(t, result.Verified)
	require.Nil(t, result.Payment)
	require.Zero(t, stub.fetchCalls, "detail fetch must not run for a tampered confirmation")
}

func TestVerifyRejectsWebhookSecretSignature(t *testing.T) {
	stub := &stubGateway{}
	svc := newService(stub)

	result, err := svc.Verify(context.Background(), signedConfirmation("webhook-secret"))
	require.NoError(t, err)
	require.False(t, result.Verified)
	require.Zero(t, stub.fetchCalls)
}

func TestVerifySuccessWithDetails(t *testing.T) {
	stub := &stubGateway{payment: gateway.Payment{
		ID:          "pay_xyz",
		OrderID:     "order_abc",
		AmountMinor: 4999,
		Currency:    "INR",
		Status:      "captured",
		Method:      "upi",
		CreatedAt:   1700000000,
	}}
	svc := newService(stub)

	result, err := svc.Verify(context.Background(), signedConfirmation(orderSecret))
	require.NoError(t, err)
	require.True(t, result.Verified)
	require.NotNil(t, result.Payment)
	require.Equal(t, "pay_xyz", result.Payment.ID)
	require.Equal(t, "order_abc", result.Payment.OrderID)
	require.Equal(t, int64(4999), result.Payment.AmountMinor)
	require.Equal(t, "captured", result.Payment.Status)
	require.Equal(t, 1, stub.fetchCalls)
}

func TestVerifyDegradedSuccessOnFetchFailure(t *testing.T) {
	stub := &stubGateway{fetchErr: &gateway.Error{Op: "fetch payment", Message: "timeout"}}
	svc := newService(stub)

	result, err := svc.Verify(context.Background(), signedConfirmation(orderSecret))
	require.NoError(t, err)
	require.True(t, result.Verified, "fetch failure is an availability hiccup, not a forgery")
	require.Nil(t, result.Payment)
}
