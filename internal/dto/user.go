package dto

import (
	"github.com/wedplan/marketplace-api/internal/models"
)

// UserDTO represents a user in API responses. The stored credential is
// never part of a response body.
type UserDTO struct {
	ID           uint64          `json:"id"`
	Username     string          `json:"username"`
	Role         models.UserRole `json:"role"`
	BusinessName string          `json:"business_name,omitempty"`
	Description  string          `json:"description,omitempty"`
	Rating       int             `json:"rating"`
	Address      string          `json:"address,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Email        string          `json:"email,omitempty"`
	Website      string          `json:"website,omitempty"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:           user.ID,
		Username:     user.Username,
		Role:         user.Role,
		BusinessName: user.BusinessName,
		Description:  user.Description,
		Rating:       user.Rating,
		Address:      user.Address,
		Phone:        user.Phone,
		Email:        user.Email,
		Website:      user.Website,
	}
}

// ToUserDTOs converts a slice of users to DTOs
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
