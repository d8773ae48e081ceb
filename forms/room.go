package forms

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"hotelops-backend/models"
)

type RoomForm struct {
	RoomNumber       string                  `json:"roomNumber"`
	Category         string                  `json:"category"`
	Floor            string                  `json:"floor"`
	PricePerNight    decimal.Decimal         `json:"pricePerNight"`
	MaxOccupancy     models.MaxOccupancy     `json:"maxOccupancy"`
	BedConfiguration models.BedConfiguration `json:"bedConfiguration"`
	Amenities        []string                `json:"amenities"`
	Status           models.RoomStatus       `json:"status"`
	CurrentGuest     string                  `json:"currentGuest"`
	Description      string                  `json:"description"`
}

func NewRoomForm() RoomForm {
	return RoomForm{
		Status:       models.RoomAvailable,
		MaxOccupancy: models.MaxOccupancy{Adults: 2},
	}
}

func HydrateRoom(r models.Room) RoomForm {
	return RoomForm{
		RoomNumber:       r.RoomNumber,
		Category:         r.Category,
		Floor:            r.Floor,
		PricePerNight:    r.PricePerNight,
		MaxOccupancy:     r.MaxOccupancy.Data(),
		BedConfiguration: r.BedConfiguration.Data(),
		Amenities:        []string(r.Amenities),
		Status:           r.Status,
		CurrentGuest:     r.CurrentGuest,
		Description:      r.Description,
	}
}

func (f RoomForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.RoomNumber) == "" {
		errs.Add("roomNumber", "Room number is required")
	} else if len(strings.TrimSpace(f.RoomNumber)) > 50 {
		errs.Add("roomNumber", "Room number must be at most 50 characters")
	}
	if strings.TrimSpace(f.Category) == "" {
		errs.Add("category", "Category is required")
	}
	if len(f.Floor) > 10 {
		errs.Add("floor", "Floor must be at most 10 characters")
	}
	if f.PricePerNight.IsNegative() {
		errs.Add("pricePerNight", "Price per night cannot be negative")
	}
	if f.MaxOccupancy.Adults < 1 {
		errs.Add("maxOccupancy.adults", "At least one adult is required")
	}
	if f.MaxOccupancy.Children < 0 {
		errs.Add("maxOccupancy.children", "Children cannot be negative")
	}
	if f.BedConfiguration.Count < 0 {
		errs.Add("bedConfiguration.count", "Bed count cannot be negative")
	}
	status := f.Status
	if status == "" {
		status = models.RoomAvailable
	}
	if !status.Valid() {
		errs.Add("status", "Status is invalid")
	}
	return errs
}

func (f RoomForm) Model() models.Room {
	var r models.Room
	f.Apply(&r)
	return r
}

// Apply copies the form onto r. A guest is only kept on occupied rooms.
func (f RoomForm) Apply(r *models.Room) {
	status := f.Status
	if status == "" {
		status = models.RoomAvailable
	}
	r.RoomNumber = strings.TrimSpace(f.RoomNumber)
	r.Category = strings.TrimSpace(f.Category)
	r.Floor = strings.TrimSpace(f.Floor)
	r.PricePerNight = f.PricePerNight
	r.MaxOccupancy = datatypes.NewJSONType(f.MaxOccupancy)
	r.BedConfiguration = datatypes.NewJSONType(f.BedConfiguration)
	r.Amenities = datatypes.NewJSONSlice(nonNil(f.Amenities))
	r.Status = status
	r.CurrentGuest = guestFor(status, f.CurrentGuest)
	r.Description = f.Description
}

// RoomStatusForm is the payload of a status transition.
type RoomStatusForm struct {
	Status       models.RoomStatus `json:"status"`
	CurrentGuest string            `json:"currentGuest"`
}

func (f RoomStatusForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if !f.Status.Valid() {
		errs.Add("status", "Status must be one of available, occupied, maintenance, cleaning, out_of_order")
	}
	return errs
}

func (f RoomStatusForm) Apply(r *models.Room) {
	r.Status = f.Status
	r.CurrentGuest = guestFor(f.Status, f.CurrentGuest)
}

func guestFor(status models.RoomStatus, guest string) string {
	if status != models.RoomOccupied {
		return ""
	}
	return strings.TrimSpace(guest)
}
