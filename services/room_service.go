package services

import (
	"context"

	"gorm.io/gorm"

	"hotelops-backend/metrics"
	"hotelops-backend/models"
)

// RoomService manages the rooms of one hotel. Every lookup is scoped by
// hotel id so a room id from another hotel reads as not found.
type RoomService struct {
	DB      *gorm.DB
	Metrics *metrics.Metrics
}

func NewRoomService(db *gorm.DB, m *metrics.Metrics) *RoomService {
	return &RoomService{DB: db, Metrics: m}
}

func (s *RoomService) hotelExists(tx *gorm.DB, hotelID uint) error {
	var n int64
	if err := tx.Model(&models.Hotel{}).Where("id = ?", hotelID).Count(&n).Error; err != nil {
		return dbErr("find hotel", err)
	}
	if n == 0 {
		return dbErr("find hotel", gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *RoomService) List(ctx context.Context, hotelID uint) ([]models.Room, error) {
	db := s.DB.WithContext(ctx)
	if err := s.hotelExists(db, hotelID); err != nil {
		return nil, err
	}
	var rooms []models.Room
	err := db.Where("hotel_id = ?", hotelID).Order("room_number ASC").Find(&rooms).Error
	return rooms, dbErr("list rooms", err)
}

func (s *RoomService) Get(ctx context.Context, hotelID, roomID uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).Where("hotel_id = ?", hotelID).First(&room, roomID).Error
	if err != nil {
		return nil, dbErr("find room", err)
	}
	return &room, nil
}

func (s *RoomService) Create(ctx context.Context, room *models.Room) error {
	db := s.DB.WithContext(ctx)
	if err := s.hotelExists(db, room.HotelID); err != nil {
		return err
	}
	return uniqueErr("create room", db.Create(room).Error, roomNumberKey)
}

func (s *RoomService) Update(ctx context.Context, room *models.Room) error {
	return uniqueErr("update room", s.DB.WithContext(ctx).Save(room).Error, roomNumberKey)
}

// UpdateStatus sets the housekeeping status. The guest name is only kept
// while the room is occupied.
func (s *RoomService) UpdateStatus(ctx context.Context, hotelID, roomID uint, status models.RoomStatus, guest string) (*models.Room, error) {
	room, err := s.Get(ctx, hotelID, roomID)
	if err != nil {
		return nil, err
	}
	if status != models.RoomOccupied {
		guest = ""
	}
	err = s.DB.WithContext(ctx).Model(room).
		Select("status", "current_guest").
		Updates(map[string]interface{}{"status": status, "current_guest": guest}).Error
	if err != nil {
		return nil, dbErr("update room status", err)
	}
	room.Status = status
	room.CurrentGuest = guest
	s.Metrics.RecordRoomStatus(string(status))
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, hotelID, roomID uint) error {
	// hard delete so the room number can be reused
	res := s.DB.WithContext(ctx).Unscoped().Where("hotel_id = ?", hotelID).Delete(&models.Room{}, roomID)
	if res.Error != nil {
		return dbErr("delete room", res.Error)
	}
	if res.RowsAffected == 0 {
		return dbErr("delete room", gorm.ErrRecordNotFound)
	}
	return nil
}
