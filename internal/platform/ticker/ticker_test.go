package ticker_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stabilis-labs/tes_engine/internal/platform/ticker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicker_HeightsAreMonotonic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tk := ticker.New(time.Millisecond, 0, logger)

	ctx, cancel := context.WithCancel(context.Background())
	var heights []uint64
	done := make(chan struct{})

	go func() {
		defer close(done)
		tk.Run(ctx, func(ctx context.Context, height uint64) {
			heights = append(heights, height)
			if len(heights) >= 5 {
				cancel()
			}
		})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("ticker did not deliver ticks in time")
	}

	require.GreaterOrEqual(t, len(heights), 5)
	assert.EqualValues(t, 1, heights[0])
	for i := 1; i < len(heights); i++ {
		assert.Equal(t, heights[i-1]+1, heights[i])
	}
}

func TestTicker_ResumesFromStartHeight(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tk := ticker.New(time.Millisecond, 41, logger)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan uint64, 1)

	go tk.Run(ctx, func(ctx context.Context, height uint64) {
		select {
		case first <- height:
			cancel()
		default:
		}
	})

	select {
	case h := <-first:
		assert.EqualValues(t, 42, h)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("ticker did not deliver a tick in time")
	}
}
