// Package signature implements the keyed digests that prove a payment
// confirmation or webhook event originated from the gateway. The order
// secret and the webhook secret sign different canonical payloads and are
// never interchangeable.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Compute returns the lowercase hex HMAC-SHA256 digest of payload under secret.
func Compute(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether provided matches the expected digest of payload
// under secret. The comparison is constant-time over the full hex string;
// an empty secret or empty signature never verifies.
func Verify(secret string, payload []byte, provided string) bool {
	if secret == "" || provided == "" {
		return false
	}
	expected := Compute(secret, payload)
	return hmac.Equal([]byte(expected), []byte(provided))
}

// PaymentPayload builds the canonical string signed by the gateway for a
// client-side payment confirmation.
func PaymentPayload(orderID, paymentID string) []byte {
	return []byte(orderID + "|" + paymentID)
}

// Preview returns a short prefix of a signature for diagnostic logging.
// Previews are never used in comparisons.
func Preview(sig string) string {
	if len(sig) <= 10 {
		return sig
	}
	return sig[:10] + "..."
}
