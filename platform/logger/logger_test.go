package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	t.Cleanup(SetNopLogger)

	require.NoError(t, Init("debug", true))
	require.NoError(t, Init("info", false))

	err := Init("loud", false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "logger.Init")
}

func TestContextFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &logger{zap: zap.New(core)}

	ctx := ContextWith(context.Background(), String("session_id", "s-1"))
	ctx = ContextWith(ctx, Int("run", 2))

	l.Info(ctx, "hello", Bool("ok", true))
	l.Error(context.Background(), "plain")

	entries := logs.All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, "s-1", fields["session_id"])
	assert.EqualValues(t, 2, fields["run"])
	assert.Equal(t, true, fields["ok"])

	assert.Empty(t, entries[1].ContextMap())
}
