package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-backend/forms"
	"hotelops-backend/models"
	"hotelops-backend/utils"
)

type RoomStore interface {
	List(ctx context.Context, hotelID uint) ([]models.Room, error)
	Get(ctx context.Context, hotelID, roomID uint) (*models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
	UpdateStatus(ctx context.Context, hotelID, roomID uint, status models.RoomStatus, guest string) (*models.Room, error)
	Delete(ctx context.Context, hotelID, roomID uint) error
}

type RoomController struct {
	Rooms  RoomStore
	Hotels HotelLookup
}

func NewRoomController(rooms RoomStore, hotels HotelLookup) *RoomController {
	return &RoomController{Rooms: rooms, Hotels: hotels}
}

// hotelParam reads :id and, for owners, checks the hotel is theirs.
func (rc *RoomController) hotelParam(c *gin.Context) (uint, bool) {
	hotelID, ok := paramID(c, "id")
	if !ok {
		return 0, false
	}
	if rc.Hotels != nil && ownerScope(c) != 0 {
		if _, err := scopedHotel(c, rc.Hotels, hotelID); err != nil {
			respondError(c, err)
			return 0, false
		}
	}
	return hotelID, true
}

func (rc *RoomController) roomParams(c *gin.Context) (hotelID, roomID uint, ok bool) {
	if hotelID, ok = rc.hotelParam(c); !ok {
		return
	}
	roomID, ok = paramID(c, "roomId")
	return
}

// ----------------------------------------------------
// GET /api/hotels/:id/rooms
// ----------------------------------------------------

func (rc *RoomController) GetRooms(c *gin.Context) {
	hotelID, ok := rc.hotelParam(c)
	if !ok {
		return
	}
	rooms, err := rc.Rooms.List(c.Request.Context(), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// ----------------------------------------------------
// GET /api/hotels/:id/rooms/:roomId
// ----------------------------------------------------

func (rc *RoomController) GetRoom(c *gin.Context) {
	hotelID, roomID, ok := rc.roomParams(c)
	if !ok {
		return
	}
	room, err := rc.Rooms.Get(c.Request.Context(), hotelID, roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// POST /api/hotels/:id/rooms
// ----------------------------------------------------

func (rc *RoomController) CreateRoom(c *gin.Context) {
	hotelID, ok := rc.hotelParam(c)
	if !ok {
		return
	}
	form := forms.NewRoomForm()
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeAdd, form); err != nil {
		respondError(c, err)
		return
	}

	room := form.Model()
	room.HotelID = hotelID
	if err := rc.Rooms.Create(c.Request.Context(), &room); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// ----------------------------------------------------
// PUT /api/hotels/:id/rooms/:roomId
// ----------------------------------------------------

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	hotelID, roomID, ok := rc.roomParams(c)
	if !ok {
		return
	}
	room, err := rc.Rooms.Get(c.Request.Context(), hotelID, roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	form := forms.HydrateRoom(*room)
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeEdit, form); err != nil {
		respondError(c, err)
		return
	}

	form.Apply(room)
	if err := rc.Rooms.Update(c.Request.Context(), room); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// PATCH /api/hotels/:id/rooms/:roomId/status
// ----------------------------------------------------

func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	hotelID, roomID, ok := rc.roomParams(c)
	if !ok {
		return
	}
	var form forms.RoomStatusForm
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeEdit, form); err != nil {
		respondError(c, err)
		return
	}

	room, err := rc.Rooms.UpdateStatus(c.Request.Context(), hotelID, roomID, form.Status, form.CurrentGuest)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// DELETE /api/hotels/:id/rooms/:roomId
// ----------------------------------------------------

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	hotelID, roomID, ok := rc.roomParams(c)
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(c.Request.Context(), hotelID, roomID); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
