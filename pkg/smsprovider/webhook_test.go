package smsprovider_test

import (
	"testing"

	"github.com/Behyna/sms-services/campaign/pkg/smsprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwiMLReply(t *testing.T) {
	t.Run("with body", func(t *testing.T) {
		xml, err := smsprovider.TwiMLReply("Thanks for signing up!")
		require.NoError(t, err)
		assert.Contains(t, xml, "<Response>")
		assert.Contains(t, xml, "<Message>Thanks for signing up!</Message>")
	})

	t.Run("empty body has no message", func(t *testing.T) {
		xml, err := smsprovider.TwiMLReply("")
		require.NoError(t, err)
		assert.Contains(t, xml, "Response")
		assert.NotContains(t, xml, "<Message>")
	})
}

func TestSignatureValidator_RejectsMissingSignature(t *testing.T) {
	v := smsprovider.NewSignatureValidator("token")
	assert.False(t, v.Valid("https://example.com/sms", map[string]string{"Body": "hi"}, ""))
	assert.False(t, v.Valid("https://example.com/sms", map[string]string{"Body": "hi"}, "bogus"))
}
