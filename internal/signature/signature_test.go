package signature_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-checkout/internal/signature"
)

func TestComputeRegressionVector(t *testing.T) {
	// Pinned digest for the canonical payment payload; changing the digest
	// algorithm or canonical string construction must fail this test.
	payload := signature.PaymentPayload("order_abc", "pay_xyz")
	require.Equal(t, []byte("order_abc|pay_xyz"), payload)
	require.Equal(t,
		"8a993b4b96f55bd89b598e82b82bd09112f58ff4e28fc894c7ad0cf006d483d5",
		signature.Compute("s", payload),
	)
}

func TestVerifyRoundTrip(t *testing.T) {
	secrets := []string{"s", "another-secret", "0123456789abcdef"}
	payloads := [][]byte{
		[]byte("order_abc|pay_xyz"),
		[]byte(`{"event":"payment.captured","id":"evt_1"}`),
		[]byte(""),
	}
	for _, secret := range secrets {
		for _, payload := range payloads {
			digest := signature.Compute(secret, payload)
			require.True(t, signature.Verify(secret, payload, digest))
			require.False(t, signature.Verify(secret, payload, digest[:len(digest)-1]+"0"))
			require.False(t, signature.Verify(secret, payload, "deadbeef"))
		}
	}
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	payload := signature.PaymentPayload("order_abc", "pay_xyz")
	orderSecret := "order-secret"
	webhookSecret := "webhook-secret"

	signed := signature.Compute(orderSecret, payload)
	require.True(t, signature.Verify(orderSecret, payload, signed))
	require.False(t, signature.Verify(webhookSecret, payload, signed))
}

func TestVerifyRejectsEmptyInputs(t *testing.T) {
	payload := []byte("order_abc|pay_xyz")
	require.False(t, signature.Verify("", payload, signature.Compute("", payload)))
	require.False(t, signature.Verify("s", payload, ""))
}

func TestVerifyRejectsPrefixes(t *testing.T) {
	payload := []byte("order_abc|pay_xyz")
	digest := signature.Compute("s", payload)
	// A truncated signature must never pass, previews are diagnostics only.
	require.False(t, signature.Verify("s", payload, digest[:10]))
	require.Equal(t, digest[:10]+"...", signature.Preview(digest))
}
