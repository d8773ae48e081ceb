package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MaxOccupancy struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type BedConfiguration struct {
	BedType string `json:"bedType"`
	Count   int    `json:"count"`
}

// Room belongs to a Hotel. Room numbers are unique per hotel.
type Room struct {
	ID               uint                                 `gorm:"primaryKey" json:"id"`
	HotelID          uint                                 `gorm:"not null;uniqueIndex:idx_hotel_room_number" json:"hotel_id"`
	RoomNumber       string                               `gorm:"type:varchar(50);not null;uniqueIndex:idx_hotel_room_number" json:"roomNumber"`
	Category         string                               `gorm:"size:64" json:"category"`
	Floor            string                               `gorm:"type:varchar(10)" json:"floor"`
	PricePerNight    decimal.Decimal                      `gorm:"type:decimal(12,2)" json:"pricePerNight"`
	MaxOccupancy     datatypes.JSONType[MaxOccupancy]     `json:"maxOccupancy"`
	BedConfiguration datatypes.JSONType[BedConfiguration] `json:"bedConfiguration"`
	Amenities        datatypes.JSONSlice[string]          `json:"amenities"`
	Status           RoomStatus                           `gorm:"size:32;index;default:available" json:"status"`
	CurrentGuest     string                               `gorm:"size:255" json:"currentGuest"`
	Description      string                               `gorm:"type:text" json:"description"`
	CreatedAt        time.Time                            `json:"created_at"`
	UpdatedAt        time.Time                            `json:"updated_at"`
	DeletedAt        gorm.DeletedAt                       `gorm:"index" json:"-"`
}
