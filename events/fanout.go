package events

import (
	"context"

	"hotelops-backend/models"
)

// OrderListener receives committed order changes.
type OrderListener interface {
	OrderChanged(ctx context.Context, event string, order *models.Order)
}

// Fanout forwards each change to every listener in order.
type Fanout []OrderListener

func (f Fanout) OrderChanged(ctx context.Context, event string, order *models.Order) {
	for _, l := range f {
		if l != nil {
			l.OrderChanged(ctx, event, order)
		}
	}
}
