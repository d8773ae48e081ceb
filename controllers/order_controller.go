package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops-backend/forms"
	"hotelops-backend/logger"
	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

type OrderStore interface {
	List(ctx context.Context, f services.OrderFilter) ([]models.Order, int64, error)
	Get(ctx context.Context, id uint) (*models.Order, error)
	Create(ctx context.Context, order *models.Order, createdBy uint) error
	Update(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id uint, next models.OrderStatus) (*models.Order, error)
	UpdateItemStatus(ctx context.Context, orderID, itemID uint, next models.ItemStatus) (*models.Order, error)
	Delete(ctx context.Context, id uint) error
	KitchenTickets(ctx context.Context) ([]models.Order, error)
}

// KitchenFeed upgrades a request into a live subscription.
type KitchenFeed interface {
	Serve(topic string, w http.ResponseWriter, r *http.Request) error
}

type OrderController struct {
	Orders OrderStore
	Feed   KitchenFeed
	Topic  string
}

func NewOrderController(orders OrderStore, feed KitchenFeed, topic string) *OrderController {
	return &OrderController{Orders: orders, Feed: feed, Topic: topic}
}

// GET /api/orders
func (oc *OrderController) GetOrders(c *gin.Context) {
	f := services.OrderFilter{
		Status:    models.OrderStatus(c.Query("status")),
		OrderType: models.OrderType(c.Query("order_type")),
		Page:      queryInt(c, "page"),
		Limit:     queryInt(c, "limit"),
	}
	f.Normalize()
	orders, total, err := oc.Orders.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, orders, total, f.Page, f.Limit)
}

// GET /api/orders/:id
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := oc.Orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

// POST /api/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	form := forms.NewOrderForm()
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeAdd, form); err != nil {
		respondError(c, err)
		return
	}

	order := form.Model()
	if err := oc.Orders.Create(c.Request.Context(), &order, userID(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

// PUT /api/orders/:id
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := oc.Orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	form := forms.HydrateOrder(*order)
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeEdit, form); err != nil {
		respondError(c, err)
		return
	}

	form.Apply(order)
	if err := oc.Orders.Update(c.Request.Context(), order); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// PATCH /api/orders/:id/status
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req orderStatusRequest
	if err := bindForm(c, &req); err != nil {
		respondError(c, err)
		return
	}
	status := models.OrderStatus(req.Status)
	if !status.Valid() {
		respondError(c, forms.FieldErrors{"status": "Status must be one of pending, in_progress, prepared, completed, cancelled"})
		return
	}
	order, err := oc.Orders.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

// PATCH /api/orders/:id/items/:itemId/status
func (oc *OrderController) UpdateItemStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var req orderStatusRequest
	if err := bindForm(c, &req); err != nil {
		respondError(c, err)
		return
	}
	status := models.ItemStatus(req.Status)
	if !status.Valid() {
		respondError(c, forms.FieldErrors{"status": "Status must be one of pending, in_progress, prepared"})
		return
	}
	order, err := oc.Orders.UpdateItemStatus(c.Request.Context(), id, itemID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

// DELETE /api/orders/:id
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := oc.Orders.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// GET /api/kitchen/tickets
func (oc *OrderController) GetKitchenTickets(c *gin.Context) {
	orders, err := oc.Orders.KitchenTickets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

// GET /api/ws/kitchen
func (oc *OrderController) KitchenSocket(c *gin.Context) {
	if err := oc.Feed.Serve(oc.Topic, c.Writer, c.Request); err != nil {
		// the upgrader has already written the error response
		logger.FromGin(c).Warn("kitchen websocket upgrade failed", zap.Error(err))
	}
}
