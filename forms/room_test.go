package forms

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"hotelops-backend/models"
)

func TestRoomValidate(t *testing.T) {
	f := RoomForm{PricePerNight: decimal.NewFromInt(-1), Status: "flooded"}
	errs := f.Validate()
	for _, field := range []string{"roomNumber", "category", "pricePerNight", "maxOccupancy.adults", "status"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error on %s, got %v", field, errs)
		}
	}
}

func TestRoomApply_GuestOnlyOnOccupied(t *testing.T) {
	f := NewRoomForm()
	f.RoomNumber = "101"
	f.Category = "deluxe"
	f.CurrentGuest = "Mr. Smith"
	if r := f.Model(); r.CurrentGuest != "" {
		t.Errorf("available room kept guest %q", r.CurrentGuest)
	}

	var r models.Room
	RoomStatusForm{Status: models.RoomOccupied, CurrentGuest: " Mr. Smith "}.Apply(&r)
	if r.CurrentGuest != "Mr. Smith" {
		t.Errorf("occupied room guest: got %q", r.CurrentGuest)
	}
	RoomStatusForm{Status: models.RoomCleaning, CurrentGuest: "Mr. Smith"}.Apply(&r)
	if r.CurrentGuest != "" {
		t.Errorf("cleaning room kept guest %q", r.CurrentGuest)
	}
}

func TestRoomEditRoundTrip(t *testing.T) {
	f := RoomForm{
		RoomNumber:       "204",
		Category:         "suite",
		Floor:            "2",
		PricePerNight:    decimal.RequireFromString("3500.00"),
		MaxOccupancy:     models.MaxOccupancy{Adults: 2, Children: 1},
		BedConfiguration: models.BedConfiguration{BedType: "king", Count: 1},
		Amenities:        []string{"minibar"},
		Status:           models.RoomOccupied,
		CurrentGuest:     "J. Doe",
	}
	orig := f.Model()
	orig.ID = 8
	orig.HotelID = 1

	got := orig
	HydrateRoom(orig).Apply(&got)
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("round trip changed record:\n got  %+v\n want %+v", got, orig)
	}
}
