package dispatch

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcher_DispatchNeverBlocks(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher(slog.New(slog.NewTextHandler(&buf, nil)), nil)

	for i := 0; i < queueSize; i++ {
		d.Dispatch(Action{PlayerName: "Steve", Command: fmt.Sprintf("kick Steve %d", i)})
	}
	require.NotContains(t, buf.String(), "queue full")

	// One past capacity is dropped and logged instead of blocking.
	d.Dispatch(Action{PlayerName: "Steve", Command: "kick Steve overflow"})
	require.Contains(t, buf.String(), "queue full")
}

func TestDispatcher_CloseLogsPendingActions(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher(slog.New(slog.NewTextHandler(&buf, nil)), nil)

	d.Dispatch(Action{PlayerName: "Steve", Command: "kick Steve spam"})
	d.Dispatch(Action{PlayerName: "Alex", Command: "ban Alex spam"})

	d.Close()
	out := buf.String()
	require.Contains(t, out, "discarding pending enforcement action on shutdown")
	require.Contains(t, out, "kick Steve spam")
	require.Contains(t, out, "ban Alex spam")
	require.Contains(t, out, "count=2")
}

func TestDispatcher_CloseWithoutStartOrPending(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher(slog.New(slog.NewTextHandler(&buf, nil)), nil)

	// Must not block waiting for a consumer that never ran, and must not log.
	d.Close()
	d.Close()
	require.Empty(t, buf.String())
}
