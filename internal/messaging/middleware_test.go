package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}

	t.Run("should succeed without retry", func(t *testing.T) {
		calls := 0
		handler := WithRetry(func(ctx context.Context, key, value []byte) error {
			calls++
			return nil
		}, cfg)

		err := handler(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("should retry until the handler recovers", func(t *testing.T) {
		calls := 0
		handler := WithRetry(func(ctx context.Context, key, value []byte) error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		}, cfg)

		err := handler(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("should give up after max attempts", func(t *testing.T) {
		calls := 0
		handlerErr := errors.New("permanent")
		handler := WithRetry(func(ctx context.Context, key, value []byte) error {
			calls++
			return handlerErr
		}, cfg)

		err := handler(context.Background(), nil, nil)

		assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
		assert.ErrorIs(t, err, handlerErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("should stop on context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		handler := WithRetry(func(ctx context.Context, key, value []byte) error {
			cancel()
			return errors.New("transient")
		}, cfg)

		err := handler(ctx, nil, nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

// mockDLQ records what lands in the dead letter queue.
type mockDLQ struct {
	published  bool
	key, value []byte
	err        error
}

func (m *mockDLQ) PublishToDLQ(_ context.Context, key, value []byte, err error) error {
	m.published = true
	m.key = key
	m.value = value
	m.err = err
	return nil
}

func TestWithDLQ(t *testing.T) {
	t.Run("should not touch DLQ on success", func(t *testing.T) {
		dlq := &mockDLQ{}
		handler := WithDLQ(func(ctx context.Context, key, value []byte) error {
			return nil
		}, dlq)

		err := handler(context.Background(), []byte("101"), []byte("payload"))

		require.NoError(t, err)
		assert.False(t, dlq.published)
	})

	t.Run("should route failed message to DLQ and commit", func(t *testing.T) {
		dlq := &mockDLQ{}
		handlerErr := errors.New("poison message")
		handler := WithDLQ(func(ctx context.Context, key, value []byte) error {
			return handlerErr
		}, dlq)

		err := handler(context.Background(), []byte("101"), []byte("payload"))

		// nil so the consumer commits the offset; the message lives on in DLQ
		require.NoError(t, err)
		assert.True(t, dlq.published)
		assert.Equal(t, []byte("101"), dlq.key)
		assert.Equal(t, []byte("payload"), dlq.value)
		assert.ErrorIs(t, dlq.err, handlerErr)
	})
}

func TestNewEnvelope(t *testing.T) {
	t.Run("should wrap payload with metadata", func(t *testing.T) {
		env, err := NewEnvelope("101", "stock.move", map[string]int{"product_id": 101})

		require.NoError(t, err)
		assert.NotEmpty(t, env.EventID)
		assert.Equal(t, "101", env.Key)
		assert.Equal(t, "stock.move", env.Type)
		assert.JSONEq(t, `{"product_id":101}`, string(env.Payload))
		assert.False(t, env.Timestamp.IsZero())
	})

	t.Run("should reject unmarshalable payload", func(t *testing.T) {
		_, err := NewEnvelope("101", "stock.move", make(chan int))

		assert.Error(t, err)
	})
}
