package kafka

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport_Topic(t *testing.T) {
	tr := NewTransport([]string{"localhost:9092"}, "bridge", 0, zerolog.Nop())

	assert.Equal(t, "bridge.dom-b", tr.Topic("dom-b"))
	assert.Equal(t, "bridge.dom-a", tr.Topic("dom-a"))
}

func TestTransport_ComputeFee(t *testing.T) {
	tr := NewTransport([]string{"localhost:9092"}, "bridge", 25, zerolog.Nop())

	fee, err := tr.ComputeFee(context.Background(), "dom-b", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(25), fee)
}

func TestTransport_WriterPerDomain(t *testing.T) {
	tr := NewTransport([]string{"localhost:9092"}, "bridge", 0, zerolog.Nop())
	defer tr.Close()

	wa := tr.writer("dom-a")
	wb := tr.writer("dom-b")
	assert.NotSame(t, wa, wb)
	assert.Same(t, wa, tr.writer("dom-a"), "writers are cached per destination")
	assert.Equal(t, "bridge.dom-a", wa.Topic)
}
