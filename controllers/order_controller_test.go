package controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotelops-backend/access"
	"hotelops-backend/controllers"
	"hotelops-backend/models"
	"hotelops-backend/services"
)

type mockOrderStore struct {
	orders    map[uint]models.Order
	createdBy uint
}

func (m *mockOrderStore) List(_ context.Context, f services.OrderFilter) ([]models.Order, int64, error) {
	var out []models.Order
	for _, o := range m.orders {
		if f.Status == "" || o.Status == f.Status {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockOrderStore) Get(_ context.Context, id uint) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &o, nil
}

func (m *mockOrderStore) Create(_ context.Context, o *models.Order, createdBy uint) error {
	o.ID = uint(len(m.orders) + 1)
	o.OrderNumber = fmt.Sprintf("ORD-TEST-%d", o.ID)
	m.createdBy = createdBy
	m.orders[o.ID] = *o
	return nil
}

func (m *mockOrderStore) Update(_ context.Context, o *models.Order) error {
	if o.Status != models.OrderPending {
		return services.ErrInvalidTransition
	}
	m.orders[o.ID] = *o
	return nil
}

func (m *mockOrderStore) UpdateStatus(ctx context.Context, id uint, next models.OrderStatus) (*models.Order, error) {
	o, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransition(next) {
		return nil, services.ErrInvalidTransition
	}
	o.Status = next
	m.orders[id] = *o
	return o, nil
}

func (m *mockOrderStore) UpdateItemStatus(ctx context.Context, orderID, itemID uint, next models.ItemStatus) (*models.Order, error) {
	o, err := m.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			o.Items[i].Status = next
			o.SyncStatusFromItems(time.Now())
			m.orders[orderID] = *o
			return o, nil
		}
	}
	return nil, services.ErrNotFound
}

func (m *mockOrderStore) Delete(_ context.Context, id uint) error {
	delete(m.orders, id)
	return nil
}

func (m *mockOrderStore) KitchenTickets(_ context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.Status.Open() {
			out = append(out, o)
		}
	}
	return out, nil
}

func setupOrderRouter(store *mockOrderStore) *gin.Engine {
	oc := controllers.NewOrderController(store, nil, "kitchen")
	return newRouter(func(g *gin.RouterGroup) {
		g.GET("/orders", oc.GetOrders)
		g.POST("/orders", oc.CreateOrder)
		g.PUT("/orders/:id", oc.UpdateOrder)
		g.PATCH("/orders/:id/status", oc.UpdateOrderStatus)
		g.PATCH("/orders/:id/items/:itemId/status", oc.UpdateItemStatus)
		g.GET("/kitchen/tickets", oc.GetKitchenTickets)
	})
}

func TestCreateOrder(t *testing.T) {
	store := &mockOrderStore{orders: map[uint]models.Order{}}
	r := setupOrderRouter(store)
	token := tokenFor(t, 12, access.RoleRestaurantOwner, nil)

	rr := doRequest(t, r, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"table_number": "T4",
		"items": []map[string]interface{}{
			{"name": "Paneer Tikka", "qty": 2, "price": "250.00"},
			{"name": "Lassi", "qty": 1, "price": "80"},
		},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (%s)", rr.Code, rr.Body.String())
	}
	var o models.Order
	decodeData(t, rr, &o)
	if o.Status != models.OrderPending || o.OrderType != models.OrderDineIn {
		t.Errorf("defaults: status %q type %q", o.Status, o.OrderType)
	}
	if !o.Total.Equal(decimal.RequireFromString("580")) {
		t.Errorf("total: got %s, want 580", o.Total)
	}
	if store.createdBy != 12 {
		t.Errorf("created by: got %d, want 12", store.createdBy)
	}

	rr = doRequest(t, r, http.MethodPost, "/api/orders", token, map[string]interface{}{"order_type": "dine_in"})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("order without table: got %d, want 422", rr.Code)
	}
}

func TestOrderStatusPipeline(t *testing.T) {
	store := &mockOrderStore{orders: map[uint]models.Order{
		1: {ID: 1, Status: models.OrderPending, OrderType: models.OrderTakeaway, Items: []models.OrderItem{
			{ID: 10, OrderID: 1, Name: "Dal", Quantity: 1, Status: models.ItemPending},
			{ID: 11, OrderID: 1, Name: "Rice", Quantity: 1, Status: models.ItemPending},
		}},
	}}
	r := setupOrderRouter(store)
	token := tokenFor(t, 5, access.RoleStaff, nil)

	rr := doRequest(t, r, http.MethodPatch, "/api/orders/1/status", token, map[string]string{"status": "completed"})
	if rr.Code != http.StatusConflict {
		t.Errorf("skipping steps: got %d, want 409", rr.Code)
	}
	rr = doRequest(t, r, http.MethodPatch, "/api/orders/1/status", token, map[string]string{"status": "eaten"})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("unknown status: got %d, want 422", rr.Code)
	}

	rr = doRequest(t, r, http.MethodPatch, "/api/orders/1/items/10/status", token, map[string]string{"status": "in_progress"})
	var o models.Order
	decodeData(t, rr, &o)
	if o.Status != models.OrderInProgress {
		t.Errorf("order should follow item, got %q", o.Status)
	}

	rr = doRequest(t, r, http.MethodPatch, "/api/orders/1/items/99/status", token, map[string]string{"status": "prepared"})
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown item: got %d, want 404", rr.Code)
	}

	rr = doRequest(t, r, http.MethodPut, "/api/orders/1", token, map[string]interface{}{"customer_name": "Late edit"})
	if rr.Code != http.StatusConflict {
		t.Errorf("editing a started order: got %d, want 409", rr.Code)
	}

	rr = doRequest(t, r, http.MethodGet, "/api/kitchen/tickets", token, nil)
	var tickets []models.Order
	decodeData(t, rr, &tickets)
	if len(tickets) != 1 {
		t.Errorf("tickets: got %d, want 1", len(tickets))
	}
}
