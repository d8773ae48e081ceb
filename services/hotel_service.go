package services

import (
	"context"

	"gorm.io/gorm"

	"hotelops-backend/models"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// List returns hotels by name. A non-zero ownerID limits the result to
// that owner's hotels.
func (s *HotelService) List(ctx context.Context, ownerID uint) ([]models.Hotel, error) {
	var hotels []models.Hotel
	q := s.DB.WithContext(ctx).Order("name ASC")
	if ownerID != 0 {
		q = q.Where("owner_id = ?", ownerID)
	}
	err := q.Find(&hotels).Error
	return hotels, dbErr("list hotels", err)
}

func (s *HotelService) Get(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("room_number ASC") }).
		First(&hotel, id).Error
	if err != nil {
		return nil, dbErr("find hotel", err)
	}
	return &hotel, nil
}

func (s *HotelService) Create(ctx context.Context, hotel *models.Hotel) error {
	return dbErr("create hotel", s.DB.WithContext(ctx).Omit("Rooms").Create(hotel).Error)
}

func (s *HotelService) Update(ctx context.Context, hotel *models.Hotel) error {
	return dbErr("update hotel", s.DB.WithContext(ctx).Omit("Rooms").Save(hotel).Error)
}

// Delete removes the hotel and its rooms.
func (s *HotelService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().Delete(&models.Hotel{}, id)
		if res.Error != nil {
			return dbErr("delete hotel", res.Error)
		}
		if res.RowsAffected == 0 {
			return dbErr("delete hotel", gorm.ErrRecordNotFound)
		}
		return dbErr("delete rooms", tx.Unscoped().Where("hotel_id = ?", id).Delete(&models.Room{}).Error)
	})
}
