package repositories

import (
	"fmt"
	"strings"

	"mandi/internal/apperrors"
	"mandi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMVegetableRepository is a GORM implementation of VegetableRepository.
type GORMVegetableRepository struct {
	db *gorm.DB
}

// NewGORMVegetableRepository creates a new instance of GORMVegetableRepository.
func NewGORMVegetableRepository(db *gorm.DB) *GORMVegetableRepository {
	return &GORMVegetableRepository{
		db: db,
	}
}

// Create creates a new catalog entry.
func (r *GORMVegetableRepository) Create(veg *models.Vegetable) error {
	if veg.ID == "" {
		veg.ID = uuid.New().String()
	}
	if err := r.db.Create(veg).Error; err != nil {
		return fmt.Errorf("failed to create vegetable: %w", err)
	}
	return nil
}

// GetAll retrieves all vegetables, optionally filtered by a
// case-insensitive name substring.
func (r *GORMVegetableRepository) GetAll(name string) ([]models.Vegetable, error) {
	query := r.db.Model(&models.Vegetable{})
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	var veggies []models.Vegetable
	if err := query.Find(&veggies).Error; err != nil {
		return nil, fmt.Errorf("failed to get vegetables: %w", err)
	}
	return veggies, nil
}

// GetByID retrieves a single vegetable by its ID.
func (r *GORMVegetableRepository) GetByID(id string) (*models.Vegetable, error) {
	var veg models.Vegetable
	if err := r.db.First(&veg, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("vegetable with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vegetable by ID %s: %w", id, err)
	}
	return &veg, nil
}

// Update persists changes to an existing vegetable.
func (r *GORMVegetableRepository) Update(veg *models.Vegetable) error {
	res := r.db.Save(veg)
	if res.Error != nil {
		return fmt.Errorf("failed to update vegetable: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vegetable with ID %s: %w", veg.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a vegetable by its ID.
func (r *GORMVegetableRepository) Delete(id string) error {
	res := r.db.Delete(&models.Vegetable{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete vegetable: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vegetable with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
