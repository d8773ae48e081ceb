package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotelops-backend/metrics"
	"hotelops-backend/models"
	"hotelops-backend/utils"
)

// Order events pushed to the kitchen board and the message broker.
const (
	EventOrderCreated    = "order.created"
	EventOrderUpdated    = "order.updated"
	EventOrderStatus     = "order.status_changed"
	EventOrderItemStatus = "order.item_status_changed"
	EventOrderDeleted    = "order.deleted"
)

// OrderNotifier is told about every order change after it is committed.
type OrderNotifier interface {
	OrderChanged(ctx context.Context, event string, order *models.Order)
}

type OrderFilter struct {
	Status    models.OrderStatus
	OrderType models.OrderType
	Page      int
	Limit     int
}

func (f *OrderFilter) Normalize() {
	f.Page, f.Limit = clampPaging(f.Page, f.Limit)
}

type OrderService struct {
	DB       *gorm.DB
	Notifier OrderNotifier
	Metrics  *metrics.Metrics
	Log      *zap.Logger
	now      func() time.Time
}

func NewOrderService(db *gorm.DB, notifier OrderNotifier, m *metrics.Metrics, log *zap.Logger) *OrderService {
	return &OrderService{DB: db, Notifier: notifier, Metrics: m, Log: log, now: time.Now}
}

func (s *OrderService) notify(ctx context.Context, event string, order *models.Order) {
	s.Metrics.RecordOrderOperation(event)
	if s.Notifier != nil {
		s.Notifier.OrderChanged(ctx, event, order)
	}
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
}

func (s *OrderService) List(ctx context.Context, f OrderFilter) ([]models.Order, int64, error) {
	f.Page, f.Limit = clampPaging(f.Page, f.Limit)
	q := func() *gorm.DB {
		db := s.DB.WithContext(ctx).Model(&models.Order{})
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.OrderType != "" {
			db = db.Where("order_type = ?", f.OrderType)
		}
		return db
	}

	var total int64
	if err := q().Count(&total).Error; err != nil {
		return nil, 0, dbErr("count orders", err)
	}
	var orders []models.Order
	err := withItems(q()).
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&orders).Error
	return orders, total, dbErr("list orders", err)
}

func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := withItems(s.DB.WithContext(ctx)).First(&order, id).Error; err != nil {
		return nil, dbErr("find order", err)
	}
	return &order, nil
}

// NewOrderNumber returns "ORD-YYYYMMDD-XXXXXX".
func NewOrderNumber(now time.Time) (string, error) {
	code, err := utils.GenerateCode(6)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), code), nil
}

func (s *OrderService) Create(ctx context.Context, order *models.Order, createdBy uint) error {
	now := s.now()
	number, err := NewOrderNumber(now)
	if err != nil {
		return fmt.Errorf("order number: %w", err)
	}
	order.OrderNumber = number
	order.Status = models.OrderPending
	if createdBy != 0 {
		order.CreatedByID = &createdBy
	}
	for i := range order.Items {
		order.Items[i].Status = models.ItemPending
	}
	order.Total = order.CalculateTotal()

	if err := s.DB.WithContext(ctx).Create(order).Error; err != nil {
		return dbErr("create order", err)
	}
	s.notify(ctx, EventOrderCreated, order)
	return nil
}

// Update replaces the order details and items. Only pending orders can be
// edited; once the kitchen started, the ticket is fixed.
func (s *OrderService) Update(ctx context.Context, order *models.Order) error {
	if order.Status != models.OrderPending {
		return fmt.Errorf("order %s is %s: %w", order.OrderNumber, order.Status, ErrInvalidTransition)
	}
	for i := range order.Items {
		order.Items[i].ID = 0
		order.Items[i].OrderID = order.ID
		order.Items[i].Status = models.ItemPending
	}
	order.Total = order.CalculateTotal()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return dbErr("clear order items", err)
		}
		if err := tx.Omit("Items").Save(order).Error; err != nil {
			return dbErr("update order", err)
		}
		if len(order.Items) > 0 {
			if err := tx.Create(&order.Items).Error; err != nil {
				return dbErr("save order items", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notify(ctx, EventOrderUpdated, order)
	return nil
}

// applyOrderStatus moves o to next and stamps the matching timestamp.
// Preparing an order marks every item prepared.
func applyOrderStatus(o *models.Order, next models.OrderStatus, now time.Time) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, next)
	}
	if !o.Status.CanTransition(next) {
		return fmt.Errorf("%s -> %s: %w", o.Status, next, ErrInvalidTransition)
	}
	o.Status = next
	switch next {
	case models.OrderInProgress:
		o.StartedAt = utils.PtrTime(now)
	case models.OrderPrepared:
		if o.StartedAt == nil {
			o.StartedAt = utils.PtrTime(now)
		}
		o.PreparedAt = utils.PtrTime(now)
		for i := range o.Items {
			o.Items[i].Status = models.ItemPrepared
		}
	case models.OrderCompleted:
		o.CompletedAt = utils.PtrTime(now)
	}
	return nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uint, next models.OrderStatus) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyOrderStatus(order, next, s.now()); err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(order).Error; err != nil {
			return dbErr("update order status", err)
		}
		if next == models.OrderPrepared {
			err := tx.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Update("status", models.ItemPrepared).Error
			return dbErr("prepare order items", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, EventOrderStatus, order)
	return order, nil
}

// applyItemStatus moves one item forward and lets the order follow.
func applyItemStatus(o *models.Order, itemID uint, next models.ItemStatus, now time.Time) (*models.OrderItem, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown item status %q", ErrInvalidInput, next)
	}
	if o.Status != models.OrderPending && o.Status != models.OrderInProgress {
		return nil, fmt.Errorf("order is %s: %w", o.Status, ErrInvalidTransition)
	}
	var item *models.OrderItem
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			item = &o.Items[i]
			break
		}
	}
	if item == nil {
		return nil, fmt.Errorf("find order item: %w", ErrNotFound)
	}
	if !item.Status.CanTransition(next) {
		return nil, fmt.Errorf("item %s -> %s: %w", item.Status, next, ErrInvalidTransition)
	}
	item.Status = next
	o.SyncStatusFromItems(now)
	return item, nil
}

func (s *OrderService) UpdateItemStatus(ctx context.Context, orderID, itemID uint, next models.ItemStatus) (*models.Order, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	item, err := applyItemStatus(order, itemID, next, s.now())
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(item).Update("status", item.Status).Error; err != nil {
			return dbErr("update item status", err)
		}
		return dbErr("update order status", tx.Omit("Items").Save(order).Error)
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, EventOrderItemStatus, order)
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	order, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return dbErr("delete order items", err)
		}
		return dbErr("delete order", tx.Unscoped().Delete(&models.Order{}, id).Error)
	})
	if err != nil {
		return err
	}
	s.notify(ctx, EventOrderDeleted, order)
	return nil
}

// KitchenTickets returns open orders, oldest first.
func (s *OrderService) KitchenTickets(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := withItems(s.DB.WithContext(ctx)).
		Where("status IN ?", []models.OrderStatus{models.OrderPending, models.OrderInProgress, models.OrderPrepared}).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, dbErr("list kitchen tickets", err)
}
