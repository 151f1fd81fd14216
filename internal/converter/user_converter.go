package converter

import (
	"hotel-listing/internal/delivery/dto"
	"hotel-listing/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO, roles included when loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Roles:       user.RoleNames(),
		CreatedAt:   user.CreatedAt,
	}
}
