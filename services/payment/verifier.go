package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"slotbook/utils"
)

// Verifier checks payment-provider confirmation signatures. It never calls
// the provider; verification is a pure function of its inputs and the shared
// secret, so it is safe to call concurrently and repeatedly.
type Verifier struct {
	secret []byte
}

// NewVerifier constructs a Verifier over the server-held shared secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify recomputes the HMAC-SHA256 over "orderRef|paymentRef" and compares
// it to the supplied hex signature. Any mismatch, including malformed input,
// is rejected as an invalid signature.
func (v *Verifier) Verify(orderRef, paymentRef, signature string) error {
	if orderRef == "" || paymentRef == "" || signature == "" {
		return utils.NewInvalidSignatureError("payment signature verification failed")
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderRef + "|" + paymentRef))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return utils.NewInvalidSignatureError("payment signature verification failed")
	}
	return nil
}
