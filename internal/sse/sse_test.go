package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/testing/leaktest"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt := <-c.EventChannel:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilters(t *testing.T) {
	hub := startHub(t)
	all := hub.Register(nil)
	bombsOnly := hub.Register([]string{string(event.BombHit)})
	require.True(t, leaktest.WaitFor(t, time.Second, func() bool { return hub.ClientCount() == 2 }))

	hub.Broadcast(string(event.ZoneChanged), "s-1", event.ZoneEnteredPayloadV1{Zone: 2})
	hub.Broadcast(string(event.BombHit), "s-1", event.BombHitPayloadV1{Zone: 7})

	assert.Equal(t, string(event.ZoneChanged), receive(t, all).Type)
	assert.Equal(t, string(event.BombHit), receive(t, all).Type)

	got := receive(t, bombsOnly)
	assert.Equal(t, string(event.BombHit), got.Type)
	assert.Equal(t, "s-1", got.SessionID)
	select {
	case extra := <-bombsOnly.EventChannel:
		t.Fatalf("filtered client received %s", extra.Type)
	default:
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)
	c := hub.Register(nil)
	require.True(t, leaktest.WaitFor(t, time.Second, func() bool { return hub.ClientCount() == 1 }))

	hub.Unregister(c.ID)

	require.True(t, leaktest.WaitFor(t, time.Second, func() bool { return hub.ClientCount() == 0 }))
	_, open := <-c.EventChannel
	assert.False(t, open)
}

func TestHub_StopIsIdempotent(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()
	hub.Stop()
	hub.Unregister("missing")
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: string(event.GameOver), Payload: map[string]int{"zone": 3}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: 1\nevent: game.over\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
	assert.Contains(t, s, `"zone":3`)
}

func TestHandler_StreamsBusEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	sub := NewSubscriber(hub, bus)
	sub.Subscribe()
	defer sub.Close()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=wheel.bomb_hit", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string, 32)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	waitFor := func(want string) {
		t.Helper()
		deadline := time.After(2 * time.Second)
		for {
			select {
			case line, ok := <-lines:
				require.True(t, ok, "stream closed before %q", want)
				if line == want {
					return
				}
			case <-deadline:
				t.Fatalf("timed out waiting for %q", want)
			}
		}
	}

	waitFor("event: " + EventTypeConnected)
	require.True(t, leaktest.WaitFor(t, time.Second, func() bool { return hub.ClientCount() == 1 }))

	spin := domain.Spin{ID: uuid.New(), Zone: 7}
	tagged := event.Tagged(bus, event.MetadataKeySessionID, "s-9")
	require.NoError(t, tagged.Publish(context.Background(), event.NewSpinStartedEvent(spin)))
	require.NoError(t, tagged.Publish(context.Background(), event.NewBombHitEvent(spin)))

	waitFor("event: " + string(event.BombHit))
}

func TestSubscriber_CloseDetaches(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	sub := NewSubscriber(hub, bus)
	sub.Subscribe()
	require.Equal(t, 1, bus.HandlerCount(event.GameOver))

	sub.Close()

	assert.Equal(t, 0, bus.HandlerCount(event.GameOver))
}
