package repositories

import (
	"fmt"
	"strings"
	"sync"

	"mandi/internal/apperrors"
	"mandi/internal/models"

	"github.com/google/uuid"
)

// MockHotelRepository is an in-memory implementation of HotelRepository.
type MockHotelRepository struct {
	hotels map[string]models.Hotel
	mu     sync.RWMutex
}

// NewMockHotelRepository creates a new instance of MockHotelRepository.
func NewMockHotelRepository() *MockHotelRepository {
	return &MockHotelRepository{
		hotels: make(map[string]models.Hotel),
	}
}

// Create adds a new hotel.
func (r *MockHotelRepository) Create(hotel *models.Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if hotel.ID == "" {
		hotel.ID = uuid.New().String()
	}
	r.hotels[hotel.ID] = *hotel
	return nil
}

// GetByID returns a hotel by its ID.
func (r *MockHotelRepository) GetByID(id string) (*models.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hotel, ok := r.hotels[id]
	if !ok {
		return nil, fmt.Errorf("hotel with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &hotel, nil
}

// GetByEmail returns a hotel by email regardless of status.
func (r *MockHotelRepository) GetByEmail(email string) (*models.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, hotel := range r.hotels {
		if hotel.Email == email {
			h := hotel
			return &h, nil
		}
	}
	return nil, fmt.Errorf("hotel with email %s: %w", email, apperrors.ErrNotFound)
}

// GetActiveByEmail returns an active hotel by email.
func (r *MockHotelRepository) GetActiveByEmail(email string) (*models.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, hotel := range r.hotels {
		if hotel.Email == email && hotel.Status == models.StatusActive {
			h := hotel
			return &h, nil
		}
	}
	return nil, fmt.Errorf("active hotel with email %s: %w", email, apperrors.ErrNotFound)
}

// GetAll returns hotels with the same optional filters as the GORM
// implementation.
func (r *MockHotelRepository) GetAll(email, name string) ([]models.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hotels := make([]models.Hotel, 0, len(r.hotels))
	for _, hotel := range r.hotels {
		if email != "" && hotel.Email != email {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(hotel.Name), strings.ToLower(name)) {
			continue
		}
		hotels = append(hotels, hotel)
	}
	return hotels, nil
}

// Update modifies an existing hotel.
func (r *MockHotelRepository) Update(hotel *models.Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hotels[hotel.ID]; !ok {
		return fmt.Errorf("hotel with ID %s: %w", hotel.ID, apperrors.ErrNotFound)
	}
	r.hotels[hotel.ID] = *hotel
	return nil
}

// Delete removes a hotel by its ID.
func (r *MockHotelRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hotels[id]; !ok {
		return fmt.Errorf("hotel with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.hotels, id)
	return nil
}
