package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-backend/access"
	"hotelops-backend/forms"
	"hotelops-backend/middleware"
	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

const hotelUploadDir = "hotels"

// HotelLookup loads a single hotel.
type HotelLookup interface {
	Get(ctx context.Context, id uint) (*models.Hotel, error)
}

type HotelStore interface {
	HotelLookup
	List(ctx context.Context, ownerID uint) ([]models.Hotel, error)
	Create(ctx context.Context, hotel *models.Hotel) error
	Update(ctx context.Context, hotel *models.Hotel) error
	Delete(ctx context.Context, id uint) error
}

type HotelController struct {
	Hotels HotelStore
	Images ImageStore
}

func NewHotelController(hotels HotelStore, images ImageStore) *HotelController {
	return &HotelController{Hotels: hotels, Images: images}
}

// ownerScope returns the caller's user id when the caller is an owner and
// 0 for every other role.
func ownerScope(c *gin.Context) uint {
	if claims := middleware.ClaimsFrom(c); claims != nil && claims.Role == access.RoleOwner {
		return claims.UserID
	}
	return 0
}

// scopedHotel loads a hotel the caller may act on. Owners get ErrNotFound
// for hotels they do not own.
func scopedHotel(c *gin.Context, hotels HotelLookup, id uint) (*models.Hotel, error) {
	hotel, err := hotels.Get(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	if owner := ownerScope(c); owner != 0 && (hotel.OwnerID == nil || *hotel.OwnerID != owner) {
		return nil, services.ErrNotFound
	}
	return hotel, nil
}

// GET /api/hotels
func (hc *HotelController) GetHotels(c *gin.Context) {
	hotels, err := hc.Hotels.List(c.Request.Context(), ownerScope(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GET /api/hotels/:id
func (hc *HotelController) GetHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	hotel, err := scopedHotel(c, hc.Hotels, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// POST /api/hotels
func (hc *HotelController) CreateHotel(c *gin.Context) {
	var form forms.HotelForm
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeAdd, form); err != nil {
		respondError(c, err)
		return
	}

	up := newUploads(hc.Images, hotelUploadDir)
	if err := hc.storeImages(c, up, &form); err != nil {
		up.rollback()
		respondError(c, err)
		return
	}

	hotel := form.Model()
	if owner := ownerScope(c); owner != 0 {
		hotel.OwnerID = &owner
	}
	if err := hc.Hotels.Create(c.Request.Context(), &hotel); err != nil {
		up.rollback()
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// PUT /api/hotels/:id
func (hc *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	hotel, err := scopedHotel(c, hc.Hotels, id)
	if err != nil {
		respondError(c, err)
		return
	}

	form := forms.HydrateHotel(*hotel)
	previous := hotelImagePaths(form)
	// absent fields keep their stored values
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeEdit, form); err != nil {
		respondError(c, err)
		return
	}

	up := newUploads(hc.Images, hotelUploadDir)
	if err := hc.storeImages(c, up, &form); err != nil {
		up.rollback()
		respondError(c, err)
		return
	}

	form.Apply(hotel)
	if err := hc.Hotels.Update(c.Request.Context(), hotel); err != nil {
		up.rollback()
		respondError(c, err)
		return
	}
	removeReplaced(hc.Images, previous, hotelImagePaths(form))
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// DELETE /api/hotels/:id
func (hc *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	hotel, err := scopedHotel(c, hc.Hotels, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := hc.Hotels.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	removeReplaced(hc.Images, hotelImagePaths(forms.HydrateHotel(*hotel)), nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Hotel deleted successfully"})
}

// storeImages writes inline data URLs and uploaded files. Uploaded gallery
// images are appended; an uploaded logo or banner replaces the field.
func (hc *HotelController) storeImages(c *gin.Context, up *uploads, form *forms.HotelForm) error {
	images := make([]string, 0, len(form.Images))
	for _, img := range form.Images {
		if img == "" {
			continue
		}
		p, err := up.inline(img)
		if err != nil {
			return err
		}
		images = append(images, p)
	}
	for _, fh := range formFiles(c, "images") {
		p, err := up.file(fh)
		if err != nil {
			return err
		}
		images = append(images, p)
	}
	form.Images = images

	var err error
	if fh := formFile(c, "logo"); fh != nil {
		form.Logo, err = up.file(fh)
	} else {
		form.Logo, err = up.inline(form.Logo)
	}
	if err != nil {
		return err
	}
	if fh := formFile(c, "banner"); fh != nil {
		form.Banner, err = up.file(fh)
	} else {
		form.Banner, err = up.inline(form.Banner)
	}
	return err
}

func hotelImagePaths(f forms.HotelForm) []string {
	out := append([]string(nil), f.Images...)
	if f.Logo != "" {
		out = append(out, f.Logo)
	}
	if f.Banner != "" {
		out = append(out, f.Banner)
	}
	return out
}
