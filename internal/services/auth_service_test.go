package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"

	"mandi/internal/apperrors"
	"mandi/internal/models"
	"mandi/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockHotelRepo is a testify mock of repositories.HotelRepository.
type MockHotelRepo struct {
	mock.Mock
}

func (m *MockHotelRepo) Create(hotel *models.Hotel) error {
	args := m.Called(hotel)
	return args.Error(0)
}

func (m *MockHotelRepo) GetByID(id string) (*models.Hotel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hotel), args.Error(1)
}

func (m *MockHotelRepo) GetByEmail(email string) (*models.Hotel, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hotel), args.Error(1)
}

func (m *MockHotelRepo) GetActiveByEmail(email string) (*models.Hotel, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hotel), args.Error(1)
}

func (m *MockHotelRepo) GetAll(email, name string) ([]models.Hotel, error) {
	args := m.Called(email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hotel), args.Error(1)
}

func (m *MockHotelRepo) Update(hotel *models.Hotel) error {
	args := m.Called(hotel)
	return args.Error(0)
}

func (m *MockHotelRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockDealerRepo is a testify mock of repositories.DealerRepository.
type MockDealerRepo struct {
	mock.Mock
}

func (m *MockDealerRepo) Create(dealer *models.Dealer) error {
	args := m.Called(dealer)
	return args.Error(0)
}

func (m *MockDealerRepo) GetByID(id string) (*models.Dealer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dealer), args.Error(1)
}

func (m *MockDealerRepo) GetActiveByEmail(email string) (*models.Dealer, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dealer), args.Error(1)
}

// TestMain suppresses service logging for cleaner test output.
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

const testJWTSecret = "test_jwt_secret"

func testHotel(t *testing.T) *models.Hotel {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("hotel123"), bcrypt.MinCost)
	assert.NoError(t, err)
	return &models.Hotel{
		ID:       "hotel-123",
		Name:     "Grand Delhi Palace",
		Email:    "grand@hotel.com",
		Password: string(hashed),
		Address:  "Connaught Place, New Delhi",
		Contact:  "+91-9876543210",
		Status:   models.StatusActive,
	}
}

func TestAuthService_LoginHotel(t *testing.T) {
	hotelRepo := new(MockHotelRepo)
	dealerRepo := new(MockDealerRepo)
	authService := services.NewAuthService(hotelRepo, dealerRepo, testJWTSecret)

	hotel := testHotel(t)

	// Successful login returns the record and a parseable token.
	hotelRepo.On("GetActiveByEmail", hotel.Email).Return(hotel, nil).Once()
	got, token, err := authService.LoginHotel(hotel.Email, "hotel123")
	assert.NoError(t, err)
	assert.Equal(t, hotel.ID, got.ID)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, hotel.ID, claims["hotel_id"])
	assert.Equal(t, "hotel", claims["role"])
	hotelRepo.AssertExpectations(t)

	// Wrong password is an invalid credential, not unauthorized.
	hotelRepo.On("GetActiveByEmail", hotel.Email).Return(hotel, nil).Once()
	_, _, err = authService.LoginHotel(hotel.Email, "wrongpassword")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredential)
	hotelRepo.AssertExpectations(t)

	// Unknown or inactive account is unauthorized.
	hotelRepo.On("GetActiveByEmail", "nobody@hotel.com").
		Return(nil, fmt.Errorf("active hotel with email nobody@hotel.com: %w", apperrors.ErrNotFound)).Once()
	_, _, err = authService.LoginHotel("nobody@hotel.com", "hotel123")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	hotelRepo.AssertExpectations(t)
}

func TestAuthService_LoginDealer(t *testing.T) {
	hotelRepo := new(MockHotelRepo)
	dealerRepo := new(MockDealerRepo)
	authService := services.NewAuthService(hotelRepo, dealerRepo, testJWTSecret)

	hashed, err := bcrypt.GenerateFromPassword([]byte("dealer123"), bcrypt.MinCost)
	assert.NoError(t, err)
	dealer := &models.Dealer{
		ID:       "dealer-1",
		Name:     "Mandi Fresh Supplies",
		Email:    "dealer@mandi.local",
		Password: string(hashed),
		Contact:  "+91-9876500000",
		Status:   models.StatusActive,
	}

	dealerRepo.On("GetActiveByEmail", dealer.Email).Return(dealer, nil).Once()
	got, token, err := authService.LoginDealer(dealer.Email, "dealer123")
	assert.NoError(t, err)
	assert.Equal(t, dealer.ID, got.ID)
	assert.NotEmpty(t, token)

	// A dealer token does not pass the hotel gate.
	_, err = authService.ResolveHotel(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	dealerRepo.On("GetByID", dealer.ID).Return(dealer, nil).Once()
	resolved, err := authService.ResolveDealer(token)
	assert.NoError(t, err)
	assert.Equal(t, dealer.ID, resolved.ID)
	dealerRepo.AssertExpectations(t)
}

func TestAuthService_ResolveHotel(t *testing.T) {
	hotelRepo := new(MockHotelRepo)
	dealerRepo := new(MockDealerRepo)
	authService := services.NewAuthService(hotelRepo, dealerRepo, testJWTSecret)

	hotel := testHotel(t)

	hotelRepo.On("GetActiveByEmail", hotel.Email).Return(hotel, nil).Once()
	_, token, err := authService.LoginHotel(hotel.Email, "hotel123")
	assert.NoError(t, err)

	// A valid token resolves back to the active hotel.
	hotelRepo.On("GetByID", hotel.ID).Return(hotel, nil).Once()
	resolved, err := authService.ResolveHotel(token)
	assert.NoError(t, err)
	assert.Equal(t, hotel.ID, resolved.ID)
	hotelRepo.AssertExpectations(t)

	// Deactivating the hotel revokes access even with a valid token.
	inactive := *hotel
	inactive.Status = models.StatusInactive
	hotelRepo.On("GetByID", hotel.ID).Return(&inactive, nil).Once()
	_, err = authService.ResolveHotel(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	hotelRepo.AssertExpectations(t)

	// Garbage tokens are rejected outright.
	_, err = authService.ResolveHotel("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
