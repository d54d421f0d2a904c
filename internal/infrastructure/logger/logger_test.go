package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "dev", "test", "prod"} {
		t.Run(env, func(t *testing.T) {
			log := New(env)
			require.NotNil(t, log)
			child := log.With("component", "test")
			require.NotNil(t, child)
			child.Info("message", "key", "value")
		})
	}
}

func TestNew_DebugEnabledOnlyInDev(t *testing.T) {
	ctx := context.Background()
	require.True(t, New("dev").Enabled(ctx, slog.LevelDebug))
	require.False(t, New("prod").Enabled(ctx, slog.LevelDebug))
}
