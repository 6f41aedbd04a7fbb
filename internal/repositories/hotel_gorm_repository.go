package repositories

import (
	"fmt"
	"strings"

	"mandi/internal/apperrors"
	"mandi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMHotelRepository is a GORM implementation of HotelRepository.
type GORMHotelRepository struct {
	db *gorm.DB
}

// NewGORMHotelRepository creates a new instance of GORMHotelRepository.
func NewGORMHotelRepository(db *gorm.DB) *GORMHotelRepository {
	return &GORMHotelRepository{
		db: db,
	}
}

// Create creates a new hotel record.
func (r *GORMHotelRepository) Create(hotel *models.Hotel) error {
	if hotel.ID == "" {
		hotel.ID = uuid.New().String()
	}
	if err := r.db.Create(hotel).Error; err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

// GetByID retrieves a hotel by its ID.
func (r *GORMHotelRepository) GetByID(id string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.First(&hotel, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("hotel with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hotel by ID %s: %w", id, err)
	}
	return &hotel, nil
}

// GetByEmail retrieves a hotel by email regardless of status.
func (r *GORMHotelRepository) GetByEmail(email string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.First(&hotel, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("hotel with email %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hotel by email %s: %w", email, err)
	}
	return &hotel, nil
}

// GetActiveByEmail retrieves an active hotel by email. Inactive accounts
// are treated the same as missing ones.
func (r *GORMHotelRepository) GetActiveByEmail(email string) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.db.First(&hotel, "email = ? AND status = ?", email, models.StatusActive).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("active hotel with email %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get active hotel by email %s: %w", email, err)
	}
	return &hotel, nil
}

// GetAll retrieves hotels, optionally filtered by exact email and/or a
// case-insensitive name substring.
func (r *GORMHotelRepository) GetAll(email, name string) ([]models.Hotel, error) {
	query := r.db.Model(&models.Hotel{})
	if email != "" {
		query = query.Where("email = ?", email)
	}
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	var hotels []models.Hotel
	if err := query.Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to get hotels: %w", err)
	}
	return hotels, nil
}

// Update persists changes to an existing hotel.
func (r *GORMHotelRepository) Update(hotel *models.Hotel) error {
	res := r.db.Save(hotel)
	if res.Error != nil {
		return fmt.Errorf("failed to update hotel: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("hotel with ID %s: %w", hotel.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a hotel by its ID.
func (r *GORMHotelRepository) Delete(id string) error {
	res := r.db.Delete(&models.Hotel{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete hotel: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("hotel with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
