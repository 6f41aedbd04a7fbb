package repositories

import "mandi/internal/models"

// HotelRepository defines the interface for hotel data access.
type HotelRepository interface {
	Create(hotel *models.Hotel) error
	GetByID(id string) (*models.Hotel, error)
	GetByEmail(email string) (*models.Hotel, error)
	GetActiveByEmail(email string) (*models.Hotel, error)
	GetAll(email, name string) ([]models.Hotel, error)
	Update(hotel *models.Hotel) error
	Delete(id string) error
}

// DealerRepository defines the interface for dealer data access. The
// dealer table is tiny (usually a single supplier account) so only the
// lookups the access gate needs are exposed.
type DealerRepository interface {
	Create(dealer *models.Dealer) error
	GetByID(id string) (*models.Dealer, error)
	GetActiveByEmail(email string) (*models.Dealer, error)
}
