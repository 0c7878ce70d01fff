package services

import (
	"errors"
	"fmt"

	"github.com/wedplan/marketplace-api/internal/models"
	"github.com/wedplan/marketplace-api/internal/storage"
)

var ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")

// UserService handles profile and directory business logic.
type UserService struct {
	users storage.UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users storage.UserStore) *UserService {
	return &UserService{
		users: users,
	}
}

// ListBusinesses returns every account with a business role, in
// ascending ID order.
func (s *UserService) ListBusinesses() ([]models.User, error) {
	businesses, err := s.users.ListBusinesses()
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	return businesses, nil
}

// UpdateProfile applies a partial patch to the user's profile. Fields
// absent from the patch keep their prior values.
func (s *UserService) UpdateProfile(userID uint64, patch models.UserPatch) (*models.User, error) {
	user, err := s.users.UpdateUser(userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, storage.ErrInvalidRating):
			return nil, ErrRatingOutOfRange
		default:
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}
	return user, nil
}

// DeleteAccount removes the user together with every record that
// references them.
func (s *UserService) DeleteAccount(userID uint64) error {
	if err := s.users.DeleteUser(userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
