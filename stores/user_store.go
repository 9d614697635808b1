package stores

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hadiheib99/storefront-backend/auth"
	"github.com/hadiheib99/storefront-backend/config"
	"github.com/hadiheib99/storefront-backend/models"
)

// UserStore owns all reads and writes against the users table. The read
// paths never select the password digest; Authenticate loads it to verify
// and the JSON tag keeps it out of every response regardless.
type UserStore struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewUserStore(db *gorm.DB, cfg *config.Config) *UserStore {
	return &UserStore{db: db, cfg: cfg}
}

// List returns all users ordered by id ascending.
func (s *UserStore) List() ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Omit("password_digest").Order("id asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}
	return users, nil
}

// Get returns one user by id.
func (s *UserStore) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Omit("password_digest").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("could not find user %d: %w", id, err)
	}
	return &user, nil
}

// Create hashes the password and inserts the user. A duplicate email
// surfaces as ErrDuplicateEmail.
func (s *UserStore) Create(firstname, lastname, email, password string) (*models.User, error) {
	digest, err := auth.HashPassword(s.cfg, password)
	if err != nil {
		return nil, fmt.Errorf("could not create user %s: %w", email, err)
	}

	user := models.User{
		Firstname:      firstname,
		Lastname:       lastname,
		Email:          email,
		PasswordDigest: digest,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user %s: %w", email, ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("could not create user %s: %w", email, err)
	}
	return &user, nil
}

// Authenticate verifies email+password. Unknown email and wrong password
// both collapse to ErrInvalidCredentials.
func (s *UserStore) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authentication error for %s: %w", email, err)
	}

	if !auth.CheckPassword(s.cfg, password, user.PasswordDigest) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Delete removes the user. Deleting an absent id is not an error.
func (s *UserStore) Delete(id uint) error {
	if err := s.db.Delete(&models.User{}, id).Error; err != nil {
		return fmt.Errorf("could not delete user %d: %w", id, err)
	}
	return nil
}
