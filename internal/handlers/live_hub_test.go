package handlers

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubBroadcastsEventToRegisteredClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 1), id: "test-client"}
	hub.register <- client

	hub.BroadcastEvent(Event{Type: "lessonCreated", Group: "G1", Date: "2024-09-03"})

	select {
	case raw := <-client.send:
		var evt Event
		if err := json.Unmarshal(raw, &evt); err != nil {
			t.Fatalf("broadcast payload is not valid JSON: %v", err)
		}
		if evt.Type != "lessonCreated" || evt.Group != "G1" || evt.Date != "2024-09-03" {
			t.Errorf("unexpected event: %+v", evt)
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered within a second")
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 1), id: "leaving-client"}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected closed channel after unregister")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed within a second")
	}
}
