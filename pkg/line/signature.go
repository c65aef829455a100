package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// ValidateSignature verifies the X-Line-Signature header: the base64-encoded
// HMAC-SHA256 of the raw request body keyed by the channel secret.
func ValidateSignature(channelSecret string, body []byte, signature string) error {
	if channelSecret == "" {
		return fmt.Errorf("channel secret not configured")
	}

	expected, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("invalid signature encoding: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	actual := mac.Sum(nil)

	// Constant-time comparison on raw bytes.
	if !hmac.Equal(expected, actual) {
		return fmt.Errorf("signature verification failed")
	}

	return nil
}
