package services

import (
	"fmt"
	"log"
	"time"

	"mandi/internal/apperrors"
	"mandi/internal/models"
	"mandi/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the access gate: it authenticates hotels and the dealer
// by email/password and resolves bearer tokens back to verified, active
// principals. Read-only; no side effects.
type AuthService struct {
	hotelRepo  repositories.HotelRepository
	dealerRepo repositories.DealerRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(hotelRepo repositories.HotelRepository, dealerRepo repositories.DealerRepository, jwtSecret string) *AuthService {
	return &AuthService{
		hotelRepo:  hotelRepo,
		dealerRepo: dealerRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// LoginHotel authenticates a hotel and returns the record plus a signed
// bearer token. An unknown or inactive account yields ErrUnauthorized; a
// wrong password yields ErrInvalidCredential. Both map to 401 at the
// boundary, the distinction is kept for logging.
func (s *AuthService) LoginHotel(email, password string) (*models.Hotel, string, error) {
	hotel, err := s.hotelRepo.GetActiveByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("hotel login for %s: %w", email, apperrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hotel.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("hotel login for %s: %w", email, apperrors.ErrInvalidCredential)
	}

	token, err := s.generateToken(jwt.MapClaims{
		"hotel_id":   hotel.ID,
		"hotel_name": hotel.Name,
		"role":       "hotel",
	})
	if err != nil {
		return nil, "", err
	}
	return hotel, token, nil
}

// LoginDealer authenticates the dealer with the same rules as LoginHotel.
func (s *AuthService) LoginDealer(email, password string) (*models.Dealer, string, error) {
	dealer, err := s.dealerRepo.GetActiveByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("dealer login for %s: %w", email, apperrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dealer.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("dealer login for %s: %w", email, apperrors.ErrInvalidCredential)
	}

	token, err := s.generateToken(jwt.MapClaims{
		"dealer_id": dealer.ID,
		"role":      "dealer",
	})
	if err != nil {
		return nil, "", err
	}
	return dealer, token, nil
}

// ResolveHotel resolves a bearer token to a verified, active hotel. The
// hotel record is re-read on every call so a deactivated hotel loses
// access immediately, even with a still-valid token.
func (s *AuthService) ResolveHotel(tokenString string) (*models.Hotel, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims["role"] != "hotel" {
		return nil, fmt.Errorf("token role %v is not hotel: %w", claims["role"], apperrors.ErrUnauthorized)
	}

	hotelID, ok := claims["hotel_id"].(string)
	if !ok || hotelID == "" {
		return nil, fmt.Errorf("token has no hotel id: %w", apperrors.ErrUnauthorized)
	}

	hotel, err := s.hotelRepo.GetByID(hotelID)
	if err != nil {
		return nil, fmt.Errorf("hotel %s: %w", hotelID, apperrors.ErrUnauthorized)
	}
	if hotel.Status != models.StatusActive {
		return nil, fmt.Errorf("hotel %s is inactive: %w", hotelID, apperrors.ErrUnauthorized)
	}
	return hotel, nil
}

// ResolveDealer resolves a bearer token to a verified, active dealer.
func (s *AuthService) ResolveDealer(tokenString string) (*models.Dealer, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims["role"] != "dealer" {
		return nil, fmt.Errorf("token role %v is not dealer: %w", claims["role"], apperrors.ErrUnauthorized)
	}

	dealerID, ok := claims["dealer_id"].(string)
	if !ok || dealerID == "" {
		return nil, fmt.Errorf("token has no dealer id: %w", apperrors.ErrUnauthorized)
	}

	dealer, err := s.dealerRepo.GetByID(dealerID)
	if err != nil {
		return nil, fmt.Errorf("dealer %s: %w", dealerID, apperrors.ErrUnauthorized)
	}
	if dealer.Status != models.StatusActive {
		return nil, fmt.Errorf("dealer %s is inactive: %w", dealerID, apperrors.ErrUnauthorized)
	}
	return dealer, nil
}

func (s *AuthService) generateToken(claims jwt.MapClaims) (string, error) {
	claims["exp"] = time.Now().Add(s.tokenDurat).Unix()
	claims["iat"] = time.Now().Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

func (s *AuthService) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", apperrors.ErrUnauthorized)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token: %w", apperrors.ErrUnauthorized)
}
