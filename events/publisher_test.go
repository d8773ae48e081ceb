package events

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hotelops-backend/models"
)

func TestNewTicketEvent(t *testing.T) {
	now := time.Date(2026, 2, 3, 10, 30, 0, 0, time.FixedZone("ICT", 7*3600))
	order := &models.Order{
		ID: 5, OrderNumber: "ORD-20260203-ABC123", OrderType: models.OrderDineIn,
		TableNumber: "T4", Status: models.OrderInProgress,
		Items: []models.OrderItem{
			{ID: 1, Name: "Pad Thai", Quantity: 2, Price: decimal.NewFromInt(120), PrepTime: 10, Status: models.ItemInProgress},
			{ID: 2, Name: "Som Tum", Quantity: 1, Price: decimal.NewFromInt(80), PrepTime: 5, Status: models.ItemPending},
		},
	}

	ev := NewTicketEvent("order.status_changed", order, now)
	if ev.OrderNumber != order.OrderNumber || ev.TableNumber != "T4" || ev.Status != models.OrderInProgress {
		t.Errorf("event: got %+v", ev)
	}
	if len(ev.Items) != 2 || ev.Items[0].Quantity != 2 || ev.Items[1].Status != models.ItemPending {
		t.Errorf("items: got %+v", ev.Items)
	}
	if ev.OccurredAt.Location() != time.UTC {
		t.Errorf("OccurredAt should be UTC, got %v", ev.OccurredAt.Location())
	}
}

func TestPublisher_DisabledIsNoop(t *testing.T) {
	p := NewPublisher("", nil)
	if p.Enabled() {
		t.Fatal("empty URL should disable the publisher")
	}
	if err := p.Publish(context.Background(), QueueKitchenTickets, map[string]string{"a": "b"}); err != nil {
		t.Errorf("Publish: %v", err)
	}
	p.OrderChanged(context.Background(), "order.created", &models.Order{})
}

type recorder struct{ events []string }

func (r *recorder) OrderChanged(_ context.Context, event string, _ *models.Order) {
	r.events = append(r.events, event)
}

func TestFanout(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	f := Fanout{a, nil, b}
	f.OrderChanged(context.Background(), "order.deleted", &models.Order{})

	if len(a.events) != 1 || len(b.events) != 1 || b.events[0] != "order.deleted" {
		t.Errorf("got a=%v b=%v", a.events, b.events)
	}
}
