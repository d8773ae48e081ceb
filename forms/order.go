package forms

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"hotelops-backend/models"
)

type OrderItemForm struct {
	Name     string          `json:"name"`
	Quantity int             `json:"qty"`
	Price    decimal.Decimal `json:"price"`
	PrepTime int             `json:"prep_time"`
	Notes    string          `json:"notes"`
}

type OrderForm struct {
	CustomerName        string           `json:"customer_name"`
	CustomerPhone       string           `json:"customer_phone"`
	TableNumber         string           `json:"table_number"`
	OrderType           models.OrderType `json:"order_type"`
	SpecialInstructions string           `json:"special_instructions"`
	Items               []OrderItemForm  `json:"items"`
}

func NewOrderForm() OrderForm {
	return OrderForm{OrderType: models.OrderDineIn}
}

func HydrateOrder(o models.Order) OrderForm {
	items := make([]OrderItemForm, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemForm{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			PrepTime: it.PrepTime,
			Notes:    it.Notes,
		})
	}
	return OrderForm{
		CustomerName:        o.CustomerName,
		CustomerPhone:       o.CustomerPhone,
		TableNumber:         o.TableNumber,
		OrderType:           o.OrderType,
		SpecialInstructions: o.SpecialInstructions,
		Items:               items,
	}
}

func (f OrderForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if !f.OrderType.Valid() {
		errs.Add("order_type", "Order type must be dine_in, takeaway or delivery")
	}
	if f.OrderType == models.OrderDineIn && strings.TrimSpace(f.TableNumber) == "" {
		errs.Add("table_number", "Table number is required for dine-in orders")
	}
	if f.OrderType == models.OrderDelivery && strings.TrimSpace(f.CustomerPhone) == "" {
		errs.Add("customer_phone", "Phone number is required for delivery orders")
	}
	if f.CustomerPhone != "" && !phoneRegex.MatchString(strings.TrimSpace(f.CustomerPhone)) {
		errs.Add("customer_phone", "Phone number is invalid")
	}
	if len(f.Items) == 0 {
		errs.Add("items", "At least one item is required")
	}
	for i, it := range f.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		if strings.TrimSpace(it.Name) == "" {
			errs.Add(prefix+"name", "Item name is required")
		}
		if it.Quantity < 1 {
			errs.Add(prefix+"qty", "Quantity must be at least 1")
		}
		if it.Price.IsNegative() {
			errs.Add(prefix+"price", "Price cannot be negative")
		}
		if it.PrepTime < 0 {
			errs.Add(prefix+"prep_time", "Prep time cannot be negative")
		}
	}
	return errs
}

// Model builds a new pending order with pending items.
func (f OrderForm) Model() models.Order {
	o := models.Order{Status: models.OrderPending}
	f.Apply(&o)
	return o
}

// Apply replaces the order header and items. Item progress is reset, so
// callers only apply forms to orders the kitchen has not started.
func (f OrderForm) Apply(o *models.Order) {
	o.CustomerName = strings.TrimSpace(f.CustomerName)
	o.CustomerPhone = strings.TrimSpace(f.CustomerPhone)
	o.TableNumber = strings.TrimSpace(f.TableNumber)
	o.OrderType = f.OrderType
	o.SpecialInstructions = strings.TrimSpace(f.SpecialInstructions)
	o.Items = make([]models.OrderItem, 0, len(f.Items))
	for _, it := range f.Items {
		o.Items = append(o.Items, models.OrderItem{
			Name:     strings.TrimSpace(it.Name),
			Quantity: it.Quantity,
			Price:    it.Price,
			PrepTime: it.PrepTime,
			Notes:    strings.TrimSpace(it.Notes),
			Status:   models.ItemPending,
		})
	}
	o.Total = o.CalculateTotal()
}
