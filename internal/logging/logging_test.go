package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, Level(true))
	assert.Equal(t, log.InfoLevel, Level(false))
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.InfoLevel)

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Info("parsed board", "wires", 9)
	assert.Contains(t, buf.String(), "parsed board")
	assert.Contains(t, buf.String(), "wires=9")
}

func TestContextCarry(t *testing.T) {
	l := New(&bytes.Buffer{}, log.DebugLevel)
	ctx := WithLogger(context.Background(), l)

	assert.Same(t, l, FromContext(ctx))
	assert.Same(t, log.Default(), FromContext(context.Background()))
}
