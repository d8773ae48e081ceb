package client

import (
	"context"
	"net/http"

	"hotelops-backend/forms"
	"hotelops-backend/models"
)

// HotelFiles are the optional uploads of a hotel create or update.
type HotelFiles struct {
	Images []File
	Logo   *File
	Banner *File
}

func (f HotelFiles) parts() []filePart {
	var parts []filePart
	for _, img := range f.Images {
		parts = append(parts, filePart{field: "images", file: img})
	}
	if f.Logo != nil {
		parts = append(parts, filePart{field: "logo", file: *f.Logo})
	}
	if f.Banner != nil {
		parts = append(parts, filePart{field: "banner", file: *f.Banner})
	}
	return parts
}

func (c *Client) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	var out []models.Hotel
	err := c.doJSON(ctx, http.MethodGet, "/hotels", nil, nil, &out)
	return out, err
}

func (c *Client) GetHotel(ctx context.Context, id uint) (*models.Hotel, error) {
	var out models.Hotel
	if err := c.doJSON(ctx, http.MethodGet, idPath("/hotels/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateHotel(ctx context.Context, form forms.HotelForm, files HotelFiles) (*models.Hotel, error) {
	var out models.Hotel
	if err := c.doMultipart(ctx, http.MethodPost, "/hotels", form, files.parts(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateHotel(ctx context.Context, id uint, form forms.HotelForm, files HotelFiles) (*models.Hotel, error) {
	var out models.Hotel
	if err := c.doMultipart(ctx, http.MethodPut, idPath("/hotels/%d", id), form, files.parts(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteHotel(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/hotels/%d", id), nil, nil, nil)
}

func (c *Client) ListRooms(ctx context.Context, hotelID uint) ([]models.Room, error) {
	var out []models.Room
	err := c.doJSON(ctx, http.MethodGet, idPath("/hotels/%d/rooms", hotelID), nil, nil, &out)
	return out, err
}

func (c *Client) GetRoom(ctx context.Context, hotelID, roomID uint) (*models.Room, error) {
	var out models.Room
	if err := c.doJSON(ctx, http.MethodGet, idPath("/hotels/%d/rooms/%d", hotelID, roomID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRoom(ctx context.Context, hotelID uint, form forms.RoomForm) (*models.Room, error) {
	var out models.Room
	if err := c.doJSON(ctx, http.MethodPost, idPath("/hotels/%d/rooms", hotelID), nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRoom(ctx context.Context, hotelID, roomID uint, form forms.RoomForm) (*models.Room, error) {
	var out models.Room
	if err := c.doJSON(ctx, http.MethodPut, idPath("/hotels/%d/rooms/%d", hotelID, roomID), nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRoomStatus(ctx context.Context, hotelID, roomID uint, form forms.RoomStatusForm) (*models.Room, error) {
	var out models.Room
	if err := c.doJSON(ctx, http.MethodPatch, idPath("/hotels/%d/rooms/%d/status", hotelID, roomID), nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRoom(ctx context.Context, hotelID, roomID uint) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/hotels/%d/rooms/%d", hotelID, roomID), nil, nil, nil)
}
