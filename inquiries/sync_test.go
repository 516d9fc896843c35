package inquiries

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "BK-001",
	}
	hub.register <- client

	hub.BroadcastStatus("BK-001", "Verifying")

	select {
	case got := <-client.Send:
		var payload statusPayload
		if err := json.Unmarshal(got, &payload); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if payload.Type != "status" || payload.BookingID != "BK-001" || payload.BookingStatus != "Verifying" {
			t.Fatalf("unexpected payload %+v", payload)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for status broadcast")
	}

	hub.unregister <- client
}

func TestHubRoomIsolation(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	watcher := &Client{Send: make(chan []byte, 10), Room: "BK-002"}
	other := &Client{Send: make(chan []byte, 10), Room: "BK-003"}
	hub.register <- watcher
	hub.register <- other

	hub.BroadcastStatus("BK-002", "Confirmed")

	select {
	case <-watcher.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for room broadcast")
	}

	select {
	case msg := <-other.Send:
		t.Fatalf("other room received %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// buffer of one; the second broadcast overflows it
	slow := &Client{Send: make(chan []byte, 1), Room: "BK-004"}
	hub.register <- slow

	hub.BroadcastStatus("BK-004", "Proposal Sent")
	hub.BroadcastStatus("BK-004", "Verifying")
	hub.BroadcastStatus("BK-004", "Reserved")

	deadline := time.After(1 * time.Second)
	for {
		select {
		case _, ok := <-slow.Send:
			if !ok {
				return // dropped, channel closed
			}
		case <-deadline:
			t.Fatal("slow client was never dropped")
		}
	}
}
