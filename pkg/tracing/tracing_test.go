package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("storefront")

	assert.Equal(t, "storefront", cfg.ServiceName)
	assert.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
	assert.Equal(t, 1.0, cfg.SampleRate)
	assert.False(t, cfg.Enabled)
}

func TestInitTracer_DisabledIsNoOp(t *testing.T) {
	cfg := DefaultConfig("storefront")

	shutdown, err := InitTracer(context.Background(), cfg)

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestTracer_ReturnsNamedTracer(t *testing.T) {
	tr := Tracer("storefront")
	assert.NotNil(t, tr)

	_, span := tr.Start(context.Background(), "test-span")
	span.End()
}
