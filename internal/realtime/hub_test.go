package realtime

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu       sync.Mutex
	messages [][]byte
	fail     bool
	closed   bool
}

func (f *fakeClient) Send(message []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return false
	}
	f.messages = append(f.messages, message)
	return true
}

func (f *fakeClient) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func TestHub_PublishFansOut(t *testing.T) {
	h := NewHub()
	a, b := &fakeClient{}, &fakeClient{}
	h.Register(a)
	h.Register(b)

	h.Publish(Event{Type: TaskCreated, TaskID: 7})

	for _, c := range []*fakeClient{a, b} {
		require.Len(t, c.messages, 1)
		var evt Event
		require.NoError(t, json.Unmarshal(c.messages[0], &evt))
		require.Equal(t, Event{Type: TaskCreated, TaskID: 7}, evt)
	}
}

func TestHub_DropsFailedClients(t *testing.T) {
	h := NewHub()
	good, bad := &fakeClient{}, &fakeClient{fail: true}
	h.Register(good)
	h.Register(bad)

	h.Publish(Event{Type: TasksCleared})

	require.Equal(t, 1, h.Len())
	require.True(t, bad.closed)
	require.False(t, good.closed)
}

func TestHub_Unregister(t *testing.T) {
	h := NewHub()
	c := &fakeClient{}
	h.Register(c)
	h.Unregister(c)

	h.Publish(Event{Type: TaskDeleted, TaskID: 1})
	require.Empty(t, c.messages)
	require.Zero(t, h.Len())
}
