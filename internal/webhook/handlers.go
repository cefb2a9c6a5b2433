package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-checkout/internal/common"
	"github.com/noah-isme/backend-checkout/internal/events"
	"github.com/noah-isme/backend-checkout/internal/obs"
	"github.com/noah-isme/backend-checkout/internal/signature"
)

// SignatureHeader carries the gateway's webhook digest.
const SignatureHeader = "X-Razorpay-Signature"

// Handler verifies and dispatches gateway webhook events. The webhook secret
// is distinct from the order secret; without it every event is rejected.
type Handler struct {
	Secret string
	Bus    *events.Bus
	Logger zerolog.Logger
}

// Handle processes POST /api/webhook. The signature is computed over the
// exact raw request bytes; re-encoding the JSON could reorder keys and break
// the digest. Once the signature passes, the event is acknowledged regardless
// of dispatch outcome.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.Secret == "" {
		h.count("not_configured")
		common.JSONError(w, http.StatusBadRequest, common.CodeWebhookNotConfigured, "Webhook secret not configured", nil)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.count("invalid_body")
		common.JSONError(w, http.StatusBadRequest, "INVALID_BODY", "unable to read payload", nil)
		return
	}

	provided := r.Header.Get(SignatureHeader)
	if !signature.Verify(h.Secret, body, provided) {
		h.count("invalid_signature")
		h.Logger.Error().
			Str("signature_preview", signature.Preview(provided)).
			Str("client_ip", common.ClientIP(r)).
			Msg("webhook signature verification failed")
		common.JSONError(w, http.StatusBadRequest, common.CodeInvalidSignature, "Invalid webhook signature", nil)
		return
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		h.count("invalid_payload")
		h.Logger.Error().Err(err).Msg("webhook payload parse failed")
		common.JSONError(w, http.StatusInternalServerError, common.CodeInvalidPayload, "Failed to process webhook", nil)
		return
	}

	h.dispatch(r, event)
	h.count("processed")
	common.JSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *Handler) dispatch(r *http.Request, event Event) {
	logger := h.Logger.With().Str("event_id", event.ID).Str("event_kind", event.Kind).Logger()
	switch event.Kind {
	case KindPaymentCaptured:
		entity := paymentEntity(event)
		logger.Info().
			Str("payment_id", entity.ID).
			Str("order_id", entity.OrderID).
			Int64("amount_minor", entity.AmountMinor).
			Msg("payment captured")
		h.emit(r, events.TopicPaymentCaptured, map[string]any{
			"paymentId": entity.ID,
			"orderId":   entity.OrderID,
			"amount":    entity.AmountMinor,
		})
	case KindPaymentFailed:
		entity := paymentEntity(event)
		logger.Warn().
			Str("payment_id", entity.ID).
			Str("order_id", entity.OrderID).
			Str("error_description", entity.ErrorDescription).
			Msg("payment failed")
		h.emit(r, events.TopicPaymentFailed, map[string]any{
			"paymentId": entity.ID,
			"orderId":   entity.OrderID,
			"error":     entity.ErrorDescription,
		})
	case KindOrderPaid:
		entity := orderEntity(event)
		logger.Info().
			Str("order_id", entity.ID).
			Int64("amount_minor", entity.AmountMinor).
			Msg("order paid")
		h.emit(r, events.TopicOrderPaid, map[string]any{
			"orderId": entity.ID,
			"amount":  entity.AmountMinor,
		})
	default:
		logger.Debug().Msg("unhandled webhook event kind")
	}
}

// emit forwards the outcome to in-process subscribers. Dispatch failures are
// logged and never fail the webhook request.
func (h *Handler) emit(r *http.Request, topic string, payload map[string]any) {
	if h.Bus == nil {
		return
	}
	if _, err := h.Bus.Emit(r.Context(), topic, payload); err != nil {
		h.Logger.Error().Err(err).Str("topic", topic).Msg("webhook event dispatch failed")
	}
}

func (h *Handler) count(result string) {
	if obs.PaymentWebhookTotal != nil {
		obs.PaymentWebhookTotal.WithLabelValues(result).Inc()
	}
}

func paymentEntity(event Event) PaymentEntity {
	if event.Payload.Payment == nil {
		return PaymentEntity{}
	}
	return event.Payload.Payment.Entity
}

func orderEntity(event Event) OrderEntity {
	if event.Payload.Order == nil {
		return OrderEntity{}
	}
	return event.Payload.Order.Entity
}
