package stream_test

import (
	"testing"

	"github.com/marcelsud/hookview/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedSink(t *testing.T) {
	t.Run("send and receive", func(t *testing.T) {
		sink := stream.NewBufferedSink(2)

		require.NoError(t, sink.Send([]byte("one")))
		require.NoError(t, sink.Send([]byte("two")))

		assert.Equal(t, []byte("one"), <-sink.Events())
		assert.Equal(t, []byte("two"), <-sink.Events())
	})

	t.Run("full buffer fails the push", func(t *testing.T) {
		sink := stream.NewBufferedSink(1)

		require.NoError(t, sink.Send([]byte("one")))
		err := sink.Send([]byte("two"))

		assert.ErrorIs(t, err, stream.ErrSinkFull)
	})

	t.Run("send after close fails", func(t *testing.T) {
		sink := stream.NewBufferedSink(1)
		sink.Close()

		err := sink.Send([]byte("one"))
		assert.ErrorIs(t, err, stream.ErrSinkClosed)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		sink := stream.NewBufferedSink(1)
		sink.Close()
		sink.Close()
	})

	t.Run("each sink has a distinct id", func(t *testing.T) {
		assert.NotEqual(t, stream.NewBufferedSink(1).ID(), stream.NewBufferedSink(1).ID())
	})
}
