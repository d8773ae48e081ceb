package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	OrderNumber         string          `gorm:"size:32;uniqueIndex" json:"order_number"`
	CustomerName        string          `gorm:"size:255" json:"customer_name"`
	CustomerPhone       string          `gorm:"size:50" json:"customer_phone"`
	TableNumber         string          `gorm:"size:20" json:"table_number"`
	OrderType           OrderType       `gorm:"size:16" json:"order_type"`
	Status              OrderStatus     `gorm:"size:16;index;default:pending" json:"status"`
	SpecialInstructions string          `gorm:"type:text" json:"special_instructions"`
	Items               []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total               decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`
	CreatedByID         *uint           `gorm:"index" json:"created_by_id,omitempty"`
	StartedAt           *time.Time      `json:"started_at,omitempty"`
	PreparedAt          *time.Time      `json:"prepared_at,omitempty"`
	CompletedAt         *time.Time      `json:"completed_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"order_id"`
	Name      string          `gorm:"size:255" json:"name"`
	Quantity  int             `json:"qty"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	PrepTime  int             `json:"prep_time"` // minutes
	Notes     string          `gorm:"type:text" json:"notes"`
	Status    ItemStatus      `gorm:"size:16;default:pending" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CalculateTotal sums price * qty over items.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// SyncStatusFromItems derives the order status from its items: any item
// started moves a pending order to in_progress, all items prepared moves it
// to prepared. Completed and cancelled orders are left alone.
func (o *Order) SyncStatusFromItems(now time.Time) {
	if o.Status == OrderCompleted || o.Status == OrderCancelled || len(o.Items) == 0 {
		return
	}
	allPrepared := true
	anyStarted := false
	for _, it := range o.Items {
		if it.Status != ItemPrepared {
			allPrepared = false
		}
		if it.Status != ItemPending {
			anyStarted = true
		}
	}
	if anyStarted && o.Status == OrderPending {
		o.Status = OrderInProgress
		if o.StartedAt == nil {
			o.StartedAt = &now
		}
	}
	if allPrepared && o.Status == OrderInProgress {
		o.Status = OrderPrepared
		if o.PreparedAt == nil {
			o.PreparedAt = &now
		}
	}
}
