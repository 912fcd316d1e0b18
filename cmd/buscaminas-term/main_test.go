package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yxrk845/Buscaminas/internal/logging"
)

func TestRunInterrupted(t *testing.T) {
	var logs bytes.Buffer
	r, w := io.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, run(ctx, logging.New(&logs, false), r, io.Discard))

	_, err := w.Write([]byte("q\n"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Contains(t, logs.String(), "interrupted, shutting down")
}

func TestRunQuit(t *testing.T) {
	var logs, out bytes.Buffer
	r, w := io.Pipe()
	go w.Write([]byte("p\nq\n"))

	require.NoError(t, run(context.Background(), logging.New(&logs, false), r, &out))

	_, err := w.Write([]byte("o 0 0\n"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Contains(t, logs.String(), "session finished")
	assert.Contains(t, out.String(), "minas: 10")
}
