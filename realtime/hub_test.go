package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"hotelops-backend/models"
)

// mockClient creates a client for testing without a real WebSocket connection
func mockClient(hub *Hub, topic string) *Client {
	return &Client{hub: hub, topic: topic, send: make(chan []byte, 256)}
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func TestHubRegistration(t *testing.T) {
	hub := startHub(t)
	client := mockClient(hub, TopicKitchen)

	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	if got := hub.Clients(TopicKitchen); got != 1 {
		t.Fatalf("clients: got %d, want 1", got)
	}

	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	if hub.rooms[TopicKitchen] != nil {
		t.Fatal("topic room not cleaned up after last client unregistered")
	}
}

func TestOrderChangedReachesKitchenOnly(t *testing.T) {
	hub := startHub(t)
	kitchen := mockClient(hub, TopicKitchen)
	other := mockClient(hub, "front-desk")
	hub.register <- kitchen
	hub.register <- other
	time.Sleep(10 * time.Millisecond)

	hub.OrderChanged(context.Background(), "order.created", &models.Order{ID: 7, OrderNumber: "ORD-1"})

	select {
	case msg := <-kitchen.send:
		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Type != "order.created" {
			t.Errorf("type: got %s", ev.Type)
		}
		var order models.Order
		if err := json.Unmarshal(ev.Payload, &order); err != nil || order.OrderNumber != "ORD-1" {
			t.Errorf("payload: got %s (%v)", ev.Payload, err)
		}
	case <-time.After(time.Second):
		t.Fatal("kitchen client did not receive the event")
	}

	select {
	case msg := <-other.send:
		t.Fatalf("other topic received %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubCountCallback(t *testing.T) {
	hub := NewHub(nil)
	counts := make(chan int, 4)
	hub.OnCount = func(n int) { counts <- n }
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	hub.register <- mockClient(hub, TopicKitchen)
	select {
	case n := <-counts:
		if n != 1 {
			t.Errorf("count: got %d, want 1", n)
		}
	case <-time.After(time.Second):
		t.Fatal("OnCount not called")
	}
}

func TestServeDeliversOverWebsocket(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := hub.Serve(TopicKitchen, w, r); err != nil {
			t.Errorf("Serve: %v", err)
		}
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(time.Second)
	for hub.Clients(TopicKitchen) == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	hub.Broadcast(TopicKitchen, Event{Type: "order.status_changed", Payload: json.RawMessage(`{"id":1}`)})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(msg), `"type":"order.status_changed"`) {
		t.Errorf("message: got %s", msg)
	}
}
