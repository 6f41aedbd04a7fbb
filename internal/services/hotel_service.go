package services

import (
	"fmt"

	"mandi/internal/apperrors"
	"mandi/internal/models"
	"mandi/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// HotelService handles onboarding and record management for hotels.
type HotelService struct {
	repo repositories.HotelRepository
}

// NewHotelService creates a new HotelService.
func NewHotelService(repo repositories.HotelRepository) *HotelService {
	return &HotelService{
		repo: repo,
	}
}

// CreateHotels onboards a batch of hotels. Each element is processed in
// order; a duplicate email fails the whole request. Passwords are hashed
// before storage and every new hotel starts active.
func (s *HotelService) CreateHotels(hotels []models.Hotel) ([]models.Hotel, error) {
	created := make([]models.Hotel, 0, len(hotels))
	for i := range hotels {
		hotel := hotels[i]

		if existing, err := s.repo.GetByEmail(hotel.Email); err == nil && existing != nil {
			return nil, fmt.Errorf("hotel with email %s: %w", hotel.Email, apperrors.ErrDuplicateEmail)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(hotel.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hotel.Password = string(hashed)
		hotel.Status = models.StatusActive

		if err := s.repo.Create(&hotel); err != nil {
			return nil, fmt.Errorf("failed to create hotel %s: %w", hotel.Email, err)
		}
		created = append(created, hotel)
	}
	return created, nil
}

// GetAllHotels lists hotels, optionally filtered by exact email and/or a
// case-insensitive name substring.
func (s *HotelService) GetAllHotels(email, name string) ([]models.Hotel, error) {
	return s.repo.GetAll(email, name)
}

// GetHotel returns a single hotel by its ID.
func (s *HotelService) GetHotel(id string) (*models.Hotel, error) {
	return s.repo.GetByID(id)
}

// UpdateHotel updates the mutable identity fields of a hotel. The id and
// lifecycle status are preserved; the password is re-hashed.
func (s *HotelService) UpdateHotel(id string, input models.Hotel) (*models.Hotel, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	existing.Name = input.Name
	existing.Email = input.Email
	existing.Password = string(hashed)
	existing.Address = input.Address
	existing.Contact = input.Contact

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteHotel removes a hotel by its ID.
func (s *HotelService) DeleteHotel(id string) error {
	return s.repo.Delete(id)
}
