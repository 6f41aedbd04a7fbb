package services

import (
	"fmt"

	"mandi/internal/models"
	"mandi/internal/repositories"
)

// VegetableService handles catalog management.
type VegetableService struct {
	repo repositories.VegetableRepository
}

// NewVegetableService creates a new VegetableService.
func NewVegetableService(repo repositories.VegetableRepository) *VegetableService {
	return &VegetableService{
		repo: repo,
	}
}

// CreateVegetables adds a batch of catalog entries with generated ids.
func (s *VegetableService) CreateVegetables(veggies []models.Vegetable) ([]models.Vegetable, error) {
	created := make([]models.Vegetable, 0, len(veggies))
	for i := range veggies {
		veg := veggies[i]
		if err := s.repo.Create(&veg); err != nil {
			return nil, fmt.Errorf("failed to create vegetable %s: %w", veg.Name, err)
		}
		created = append(created, veg)
	}
	return created, nil
}

// GetAllVegetables lists the catalog, optionally filtered by a
// case-insensitive name substring.
func (s *VegetableService) GetAllVegetables(name string) ([]models.Vegetable, error) {
	return s.repo.GetAll(name)
}

// GetVegetable returns a single catalog entry by its ID.
func (s *VegetableService) GetVegetable(id string) (*models.Vegetable, error) {
	return s.repo.GetByID(id)
}

// UpdateVegetable replaces name and price; the id is preserved.
func (s *VegetableService) UpdateVegetable(id string, input models.Vegetable) (*models.Vegetable, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Price = input.Price

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteVegetable removes a catalog entry by its ID.
func (s *VegetableService) DeleteVegetable(id string) error {
	return s.repo.Delete(id)
}
