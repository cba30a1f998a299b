package reply_test

import (
	"strings"
	"testing"

	"github.com/Behyna/sms-services/campaign/internal/reply"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	t.Run("first and last", func(t *testing.T) {
		first, last, err := reply.ParseName("name John Calvin")
		require.NoError(t, err)
		assert.Equal(t, "John", first)
		assert.Equal(t, "Calvin", last)
	})

	t.Run("multi word last name", func(t *testing.T) {
		first, last, err := reply.ParseName("Name  Mary   van der  Berg ")
		require.NoError(t, err)
		assert.Equal(t, "Mary", first)
		assert.Equal(t, "van der Berg", last)
	})

	t.Run("missing last name", func(t *testing.T) {
		_, _, err := reply.ParseName("name John")
		assert.ErrorIs(t, err, reply.ErrMalformedName)
	})

	t.Run("bare keyword", func(t *testing.T) {
		_, _, err := reply.ParseName("name")
		assert.ErrorIs(t, err, reply.ErrMalformedName)
	})

	t.Run("overlong first name", func(t *testing.T) {
		_, _, err := reply.ParseName("name " + strings.Repeat("a", 17) + " Smith")
		assert.ErrorIs(t, err, reply.ErrMalformedName)
	})
}
