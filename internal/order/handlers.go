package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-checkout/internal/common"
	"github.com/noah-isme/backend-checkout/internal/gateway"
)

// Handler exposes the order-creation endpoint.
type Handler struct {
	Svc    *Service
	Logger zerolog.Logger
}

// Create handles POST /api/create-order.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "order service not configured", nil)
		return
	}
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeInvalidAmount, "Invalid amount", nil)
		return
	}

	handle, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		if appErr, ok := common.AsAppError(err); ok {
			h.Logger.Warn().Err(err).Float64("amount", req.Amount).Msg("order rejected")
			common.JSONError(w, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
			return
		}
		var gwErr *gateway.Error
		if errors.As(err, &gwErr) {
			h.Logger.Error().Err(err).Str("op", gwErr.Op).Msg("gateway order creation failed")
		} else {
			h.Logger.Error().Err(err).Msg("order creation failed")
		}
		common.JSONError(w, http.StatusInternalServerError, common.CodeGatewayError, "Failed to create order", nil)
		return
	}

	h.Logger.Info().
		Str("order_id", handle.OrderID).
		Int64("amount_minor", handle.AmountMinor).
		Str("currency", handle.Currency).
		Msg("order created")
	common.JSON(w, http.StatusOK, handle)
}
