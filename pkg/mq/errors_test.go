package mq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"github.com/stretchr/testify/assert"
)

func TestShouldRequeue(t *testing.T) {
	base := errors.New("provider down")

	t.Run("temporary error is requeued", func(t *testing.T) {
		assert.True(t, mq.ShouldRequeue(mq.Temporary(base)))
	})

	t.Run("wrapped temporary error is requeued", func(t *testing.T) {
		err := fmt.Errorf("send failed: %w", mq.Temporary(base))
		assert.True(t, mq.ShouldRequeue(err))
	})

	t.Run("plain error is dropped", func(t *testing.T) {
		assert.False(t, mq.ShouldRequeue(base))
	})

	t.Run("temporary keeps cause", func(t *testing.T) {
		assert.ErrorIs(t, mq.Temporary(base), base)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, mq.Temporary(nil))
	})
}
