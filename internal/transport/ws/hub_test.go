package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvMessage(t *testing.T, conn *Connection) *Message {
	t.Helper()
	select {
	case data := <-conn.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return &msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestBroadcastToDashboard(t *testing.T) {
	hub := NewHub()

	conn := &Connection{
		AssessmentID: "a1",
		AdminID:      "admin_test",
		Send:         make(chan []byte, 4),
		Hub:          hub,
	}
	hub.Register(conn)

	hub.BroadcastToDashboard("a1", "score_completed", map[string]float64{"score": 0.8})

	msg := recvMessage(t, conn)
	assert.Equal(t, MsgScoreCompleted, msg.Type)

	var payload map[string]float64
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, 0.8, payload["score"])
}

func TestBroadcastReachesAllWatchers(t *testing.T) {
	hub := NewHub()

	first := &Connection{AssessmentID: "a1", Send: make(chan []byte, 4), Hub: hub}
	second := &Connection{AssessmentID: "a1", Send: make(chan []byte, 4), Hub: hub}
	other := &Connection{AssessmentID: "a2", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(first)
	hub.Register(second)
	hub.Register(other)

	hub.BroadcastToDashboard("a1", "analysis_completed", nil)

	assert.Equal(t, MsgAnalysisCompleted, recvMessage(t, first).Type)
	assert.Equal(t, MsgAnalysisCompleted, recvMessage(t, second).Type)

	select {
	case <-other.Send:
		t.Fatal("connection for a different assessment received the message")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnregisterClosesSend(t *testing.T) {
	hub := NewHub()

	conn := &Connection{AssessmentID: "a1", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(conn)
	hub.Unregister(conn)

	select {
	case _, ok := <-conn.Send:
		assert.False(t, ok, "send channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}

	// Broadcasting after unregister must not panic.
	hub.BroadcastToDashboard("a1", "score_completed", nil)
	time.Sleep(20 * time.Millisecond)
}
