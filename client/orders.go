package client

import (
	"context"
	"net/http"
	"net/url"

	"hotelops-backend/forms"
	"hotelops-backend/models"
)

type OrderQuery struct {
	Status    models.OrderStatus
	OrderType models.OrderType
	Page      int
	Limit     int
}

func (q OrderQuery) values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.OrderType != "" {
		v.Set("order_type", string(q.OrderType))
	}
	setPaging(v, q.Page, q.Limit)
	return v
}

func (c *Client) ListOrders(ctx context.Context, q OrderQuery) (*Page[models.Order], error) {
	var out Page[models.Order]
	if err := c.doJSON(ctx, http.MethodGet, "/orders", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var out models.Order
	if err := c.doJSON(ctx, http.MethodGet, idPath("/orders/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, form forms.OrderForm) (*models.Order, error) {
	var out models.Order
	if err := c.doJSON(ctx, http.MethodPost, "/orders", nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id uint, form forms.OrderForm) (*models.Order, error) {
	var out models.Order
	if err := c.doJSON(ctx, http.MethodPut, idPath("/orders/%d", id), nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/orders/%d", id), nil, nil, nil)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	var out models.Order
	in := map[string]models.OrderStatus{"status": status}
	if err := c.doJSON(ctx, http.MethodPatch, idPath("/orders/%d/status", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItemStatus moves one item and returns the whole order, whose
// status may have followed its items.
func (c *Client) UpdateItemStatus(ctx context.Context, orderID, itemID uint, status models.ItemStatus) (*models.Order, error) {
	var out models.Order
	in := map[string]models.ItemStatus{"status": status}
	if err := c.doJSON(ctx, http.MethodPatch, idPath("/orders/%d/items/%d/status", orderID, itemID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// KitchenTickets returns the open orders of the kitchen board, oldest first.
func (c *Client) KitchenTickets(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := c.doJSON(ctx, http.MethodGet, "/kitchen/tickets", nil, nil, &out)
	return out, err
}
