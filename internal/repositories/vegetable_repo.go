package repositories

import "mandi/internal/models"

// VegetableRepository defines the interface for catalog data access.
type VegetableRepository interface {
	Create(veg *models.Vegetable) error
	GetAll(name string) ([]models.Vegetable, error)
	GetByID(id string) (*models.Vegetable, error)
	Update(veg *models.Vegetable) error
	Delete(id string) error
}
