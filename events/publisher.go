// Package events publishes order domain events to RabbitMQ. Publishing
// never fails a request: errors are logged and dropped.
package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"hotelops-backend/models"
)

// QueueKitchenTickets carries every kitchen ticket change.
const QueueKitchenTickets = "kitchen.tickets"

const publishTimeout = 5 * time.Second

// TicketItem is one line of a kitchen ticket.
type TicketItem struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Quantity int               `json:"qty"`
	PrepTime int               `json:"prep_time"`
	Notes    string            `json:"notes,omitempty"`
	Status   models.ItemStatus `json:"status"`
}

// TicketEvent is the message body on the kitchen.tickets queue.
type TicketEvent struct {
	Event               string             `json:"event"`
	OrderID             uint               `json:"order_id"`
	OrderNumber         string             `json:"order_number"`
	OrderType           models.OrderType   `json:"order_type"`
	TableNumber         string             `json:"table_number,omitempty"`
	Status              models.OrderStatus `json:"status"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
	Items               []TicketItem       `json:"items"`
	OccurredAt          time.Time          `json:"occurred_at"`
}

func NewTicketEvent(event string, o *models.Order, now time.Time) TicketEvent {
	items := make([]TicketItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, TicketItem{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			PrepTime: it.PrepTime,
			Notes:    it.Notes,
			Status:   it.Status,
		})
	}
	return TicketEvent{
		Event:               event,
		OrderID:             o.ID,
		OrderNumber:         o.OrderNumber,
		OrderType:           o.OrderType,
		TableNumber:         o.TableNumber,
		Status:              o.Status,
		SpecialInstructions: o.SpecialInstructions,
		Items:               items,
		OccurredAt:          now.UTC(),
	}
}

// Publisher dials the broker per message. An empty URL disables it.
type Publisher struct {
	URL string
	Log *zap.Logger
}

func NewPublisher(url string, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{URL: url, Log: log}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.URL != ""
}

// Publish sends v as a persistent JSON message on queue.
func (p *Publisher) Publish(ctx context.Context, queue string, v interface{}) error {
	if !p.Enabled() {
		return nil
	}
	body, err := json.Marshal(v)
	if err != nil {
		p.Log.Warn("rabbitmq: marshal event failed", zap.Error(err))
		return err
	}

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		p.Log.Warn("rabbitmq: dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.Log.Warn("rabbitmq: channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		p.Log.Warn("rabbitmq: queue declare failed", zap.String("queue", queue), zap.Error(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		p.Log.Warn("rabbitmq: publish failed", zap.String("queue", queue), zap.Error(err))
		return err
	}
	return nil
}

// OrderChanged publishes the ticket in the background so the request
// does not wait on the broker.
func (p *Publisher) OrderChanged(_ context.Context, event string, order *models.Order) {
	if !p.Enabled() {
		return
	}
	msg := NewTicketEvent(event, order, time.Now())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		_ = p.Publish(ctx, QueueKitchenTickets, msg)
	}()
}
