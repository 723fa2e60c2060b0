package instrumentation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderDisabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), DefaultConfig())
	require.NoError(t, err)

	assert.False(t, provider.Enabled())
	require.NotNil(t, provider.Metrics())

	// No-op recorder must be safe to use.
	provider.Metrics().RecordAPIOperation(context.Background(), "listProjects", 200, time.Millisecond)
	provider.Metrics().RecordMoveDeleteRetry(context.Background())
	provider.Metrics().RecordMoveOutcome(context.Background(), "completed")

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProviderEnabled(t *testing.T) {
	config := DefaultConfig()
	config.Enabled = true
	config.ServiceVersion = "test"

	provider, err := NewProvider(context.Background(), config)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	assert.True(t, provider.Enabled())
	require.NotNil(t, provider.Metrics())

	provider.Metrics().RecordAPIOperation(context.Background(), "createTask", 200, 10*time.Millisecond)
	provider.Metrics().RecordMoveOutcome(context.Background(), "duplicate_remains")
}

func TestNilMetricsRecorder(t *testing.T) {
	var m *Metrics
	// Must not panic.
	m.RecordAPIOperation(context.Background(), "deleteTask", 404, time.Millisecond)
	m.RecordMoveDeleteRetry(context.Background())
	m.RecordMoveOutcome(context.Background(), "location_uncertain")
}
