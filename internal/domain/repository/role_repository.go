package repository

import (
	"hotel-listing/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByNames(db *gorm.DB, names []string) ([]entity.Role, error)
}
