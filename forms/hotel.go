package forms

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"hotelops-backend/models"
)

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

var hundred = decimal.NewFromInt(100)

type HotelForm struct {
	Name             string                  `json:"name"`
	Category         string                  `json:"category"`
	Description      string                  `json:"description"`
	Address          models.Address          `json:"address"`
	Contact          models.Contact          `json:"contact"`
	Pricing          models.Pricing          `json:"pricing"`
	Amenities        []string                `json:"amenities"`
	Facilities       []string                `json:"facilities"`
	Policies         models.Policies         `json:"policies"`
	BankDetails      models.BankDetails      `json:"bankDetails"`
	LegalInformation models.LegalInformation `json:"legalInformation"`
	SocialMedia      models.SocialMedia      `json:"socialMedia"`
	Images           []string                `json:"images"`
	Logo             string                  `json:"logo"`
	Banner           string                  `json:"banner"`
}

func HydrateHotel(h models.Hotel) HotelForm {
	return HotelForm{
		Name:             h.Name,
		Category:         h.Category,
		Description:      h.Description,
		Address:          h.Address.Data(),
		Contact:          h.Contact.Data(),
		Pricing:          h.Pricing.Data(),
		Amenities:        []string(h.Amenities),
		Facilities:       []string(h.Facilities),
		Policies:         h.Policies.Data(),
		BankDetails:      h.BankDetails.Data(),
		LegalInformation: h.LegalInformation.Data(),
		SocialMedia:      h.SocialMedia.Data(),
		Images:           []string(h.Images),
		Logo:             h.Logo,
		Banner:           h.Banner,
	}
}

func (f HotelForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "Hotel name is required")
	}
	if strings.TrimSpace(f.Category) == "" {
		errs.Add("category", "Category is required")
	}
	if strings.TrimSpace(f.Address.City) == "" {
		errs.Add("address.city", "City is required")
	}
	if strings.TrimSpace(f.Address.Country) == "" {
		errs.Add("address.country", "Country is required")
	}
	if f.Contact.Email != "" && !IsEmail(f.Contact.Email) {
		errs.Add("contact.email", "Email is invalid")
	}
	if f.Contact.Phone != "" && !phoneRegex.MatchString(f.Contact.Phone) {
		errs.Add("contact.phone", "Phone number is invalid")
	}
	if f.Pricing.Currency != "" && !currencyRegex.MatchString(f.Pricing.Currency) {
		errs.Add("pricing.currency", "Currency must be a 3-letter ISO code")
	}
	if f.Pricing.BaseRate.IsNegative() {
		errs.Add("pricing.baseRate", "Base rate cannot be negative")
	}
	if f.Pricing.TaxRate.IsNegative() || f.Pricing.TaxRate.GreaterThan(hundred) {
		errs.Add("pricing.taxRate", "Tax rate must be between 0 and 100")
	}
	if f.Pricing.ServiceCharge.IsNegative() {
		errs.Add("pricing.serviceCharge", "Service charge cannot be negative")
	}
	return errs
}

func (f HotelForm) Model() models.Hotel {
	var h models.Hotel
	f.Apply(&h)
	return h
}

func (f HotelForm) Apply(h *models.Hotel) {
	h.Name = strings.TrimSpace(f.Name)
	h.Category = strings.TrimSpace(f.Category)
	h.Description = f.Description
	h.Address = datatypes.NewJSONType(f.Address)
	h.Contact = datatypes.NewJSONType(f.Contact)
	h.Pricing = datatypes.NewJSONType(f.Pricing)
	h.Amenities = datatypes.NewJSONSlice(nonNil(f.Amenities))
	h.Facilities = datatypes.NewJSONSlice(nonNil(f.Facilities))
	h.Policies = datatypes.NewJSONType(f.Policies)
	h.BankDetails = datatypes.NewJSONType(f.BankDetails)
	h.LegalInformation = datatypes.NewJSONType(f.LegalInformation)
	h.SocialMedia = datatypes.NewJSONType(f.SocialMedia)
	h.Images = datatypes.NewJSONSlice(nonNil(f.Images))
	h.Logo = f.Logo
	h.Banner = f.Banner
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
