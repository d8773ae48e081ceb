package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

type Pricing struct {
	Currency      string          `json:"currency"`
	BaseRate      decimal.Decimal `json:"baseRate"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	ServiceCharge decimal.Decimal `json:"serviceCharge"`
}

type Policies struct {
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Cancellation string `json:"cancellation"`
	Pets         string `json:"pets"`
	Smoking      string `json:"smoking"`
	Children     string `json:"children"`
	Payment      string `json:"payment"`
}

type BankDetails struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	Branch        string `json:"branch"`
	SwiftCode     string `json:"swiftCode"`
}

type LegalInformation struct {
	RegistrationNumber string `json:"registrationNumber"`
	TaxID              string `json:"taxId"`
	LicenseNumber      string `json:"licenseNumber"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
}

// Hotel nested records are stored as JSON columns.
type Hotel struct {
	ID               uint                                  `gorm:"primaryKey" json:"id"`
	Name             string                                `gorm:"size:255;index" json:"name"`
	Category         string                                `gorm:"size:64" json:"category"`
	Description      string                                `gorm:"type:text" json:"description"`
	OwnerID          *uint                                 `gorm:"index" json:"owner_id,omitempty"`
	Address          datatypes.JSONType[Address]           `json:"address"`
	Contact          datatypes.JSONType[Contact]           `json:"contact"`
	Pricing          datatypes.JSONType[Pricing]           `json:"pricing"`
	Amenities        datatypes.JSONSlice[string]           `json:"amenities"`
	Facilities       datatypes.JSONSlice[string]           `json:"facilities"`
	Policies         datatypes.JSONType[Policies]          `json:"policies"`
	BankDetails      datatypes.JSONType[BankDetails]       `json:"bankDetails"`
	LegalInformation datatypes.JSONType[LegalInformation]  `json:"legalInformation"`
	SocialMedia      datatypes.JSONType[SocialMedia]       `json:"socialMedia"`
	Images           datatypes.JSONSlice[string]           `json:"images"`
	Logo             string                                `gorm:"size:255" json:"logo"`
	Banner           string                                `gorm:"size:255" json:"banner"`
	Rooms            []Room                                `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
	CreatedAt        time.Time                             `json:"created_at"`
	UpdatedAt        time.Time                             `json:"updated_at"`
	DeletedAt        gorm.DeletedAt                        `gorm:"index" json:"-"`
}
