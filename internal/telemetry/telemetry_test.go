package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beachmate/beachmate/internal/telemetry"
)

func TestInitDisabled(t *testing.T) {
	ctx := context.Background()

	provider, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "beachmate-test",
		ServiceVersion: "0.0.0",
		Environment:    "test",
		OTLPEndpoint:   "localhost:4317",
		Enabled:        false,
	})

	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.NotNil(t, provider.Tracer)
	assert.NotNil(t, provider.Meter)

	// Disabled telemetry never constructs SDK providers.
	assert.Nil(t, provider.TracerProvider)
	assert.Nil(t, provider.MeterProvider)

	assert.NoError(t, provider.Shutdown(ctx))
}

func TestShutdownZeroValue(t *testing.T) {
	provider := &telemetry.Provider{}
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestGlobalAccessors(t *testing.T) {
	assert.NotNil(t, telemetry.Tracer("beachmate-test"))
	assert.NotNil(t, telemetry.Meter("beachmate-test"))
}
