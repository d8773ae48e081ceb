package forms

import (
	"testing"

	"github.com/shopspring/decimal"

	"hotelops-backend/models"
)

func TestOrderValidate(t *testing.T) {
	f := OrderForm{OrderType: models.OrderDineIn, Items: []OrderItemForm{{Quantity: 0, Price: decimal.NewFromInt(-2)}}}
	errs := f.Validate()
	for _, field := range []string{"table_number", "items[0].name", "items[0].qty", "items[0].price"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error on %s, got %v", field, errs)
		}
	}

	f = OrderForm{OrderType: models.OrderDelivery}
	errs = f.Validate()
	if _, ok := errs["customer_phone"]; !ok {
		t.Errorf("delivery without phone should fail, got %v", errs)
	}
	if _, ok := errs["items"]; !ok {
		t.Errorf("empty order should fail, got %v", errs)
	}
}

func TestOrderModel(t *testing.T) {
	f := OrderForm{
		OrderType:   models.OrderTakeaway,
		Items:       []OrderItemForm{{Name: "Pad Thai", Quantity: 2, Price: decimal.RequireFromString("80")}},
		TableNumber: "",
	}
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	o := f.Model()
	if o.Status != models.OrderPending {
		t.Errorf("status: got %s", o.Status)
	}
	if o.Items[0].Status != models.ItemPending {
		t.Errorf("item status: got %s", o.Items[0].Status)
	}
	if !o.Total.Equal(decimal.NewFromInt(160)) {
		t.Errorf("total: got %s", o.Total)
	}
}
