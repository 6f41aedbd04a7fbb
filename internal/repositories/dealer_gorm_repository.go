package repositories

import (
	"fmt"

	"mandi/internal/apperrors"
	"mandi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMDealerRepository is a GORM implementation of DealerRepository.
type GORMDealerRepository struct {
	db *gorm.DB
}

// NewGORMDealerRepository creates a new instance of GORMDealerRepository.
func NewGORMDealerRepository(db *gorm.DB) *GORMDealerRepository {
	return &GORMDealerRepository{
		db: db,
	}
}

// Create creates a new dealer record.
func (r *GORMDealerRepository) Create(dealer *models.Dealer) error {
	if dealer.ID == "" {
		dealer.ID = uuid.New().String()
	}
	if err := r.db.Create(dealer).Error; err != nil {
		return fmt.Errorf("failed to create dealer: %w", err)
	}
	return nil
}

// GetByID retrieves a dealer by its ID.
func (r *GORMDealerRepository) GetByID(id string) (*models.Dealer, error) {
	var dealer models.Dealer
	if err := r.db.First(&dealer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("dealer with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dealer by ID %s: %w", id, err)
	}
	return &dealer, nil
}

// GetActiveByEmail retrieves an active dealer by email.
func (r *GORMDealerRepository) GetActiveByEmail(email string) (*models.Dealer, error) {
	var dealer models.Dealer
	err := r.db.First(&dealer, "email = ? AND status = ?", email, models.StatusActive).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("active dealer with email %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get active dealer by email %s: %w", email, err)
	}
	return &dealer, nil
}
