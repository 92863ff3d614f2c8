package terminal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readTimeout = 5 * time.Second

func TestSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Given: a session reading from a pipe instead of a terminal
	inputReader, inputWriter := io.Pipe()
	t.Cleanup(func() {
		_ = inputWriter.Close()
	})

	session := Open(logger, defaultKeys(), config.Display{NoColor: true, HideHelp: true, Inline: true}, WithIO(inputReader, io.Discard))

	require.NoError(t, session.Render(initialFrame()))

	t.Run("Cancelled context stops waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := session.ReadEvent(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Key press is delivered as an event", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()

		// When: the space bar is pressed
		go func() {
			_, _ = inputWriter.Write([]byte(" "))
		}()

		event, err := session.ReadEvent(ctx)

		// Then: a confirm event arrives
		require.NoError(t, err)
		assert.Equal(t, entity.ConfirmEvent(), event)
	})

	t.Run("Closed session rejects further use", func(t *testing.T) {
		require.NoError(t, session.Close())

		_, err := session.ReadEvent(context.Background())
		require.ErrorIs(t, err, ErrSessionClosed)
		require.ErrorIs(t, session.Render(initialFrame()), ErrSessionClosed)

		// closing twice is harmless
		assert.NoError(t, session.Close())
	})
}
