package log

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntoFrom_RoundTrip(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := Into(context.Background(), l)
	require.Same(t, l, From(ctx))
}

func TestFrom_EmptyContext_ReturnsDefault(t *testing.T) {
	require.Same(t, slog.Default(), From(context.Background()))
}

func TestInto_NilLogger_KeepsContextUsable(t *testing.T) {
	ctx := Into(context.Background(), nil)
	require.Same(t, slog.Default(), From(ctx))
}
