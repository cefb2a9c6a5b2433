package payment

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-checkout/internal/common"
)

// Handler exposes the client payment verification endpoint.
type Handler struct {
	Svc    *Service
	Logger zerolog.Logger
}

type verifyResp struct {
	Success bool     `json:"success"`
	Payment *Details `json:"payment,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Verify handles POST /api/verify-payment.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "payment service not configured", nil)
		return
	}
	var confirmation Confirmation
	if err := json.NewDecoder(r.Body).Decode(&confirmation); err != nil {
		common.JSON(w, http.StatusBadRequest, verifyResp{Success: false, Error: "Missing payment details"})
		return
	}

	result, err := h.Svc.Verify(r.Context(), confirmation)
	if err != nil {
		if appErr, ok := common.AsAppError(err); ok {
			common.JSON(w, appErr.HTTPStatus, verifyResp{Success: false, Error: appErr.Message})
			return
		}
		h.Logger.Error().Err(err).Msg("payment verification failed")
		common.JSON(w, http.StatusInternalServerError, verifyResp{Success: false, Error: "Failed to verify payment"})
		return
	}

	if !result.Verified {
		common.JSON(w, http.StatusBadRequest, verifyResp{Success: false, Error: "Invalid payment signature"})
		return
	}
	if result.Payment == nil {
		common.JSON(w, http.StatusOK, verifyResp{Success: true, Message: "Payment verified but could not fetch details"})
		return
	}
	common.JSON(w, http.StatusOK, verifyResp{Success: true, Payment: result.Payment})
}
