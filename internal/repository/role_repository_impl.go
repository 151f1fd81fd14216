package repository

import (
	"hotel-listing/internal/domain/entity"
	domainRepo "hotel-listing/internal/domain/repository"

	"gorm.io/gorm"
)

type roleRepository struct{}

func NewRoleRepository() domainRepo.RoleRepository {
	return &roleRepository{}
}

func (r *roleRepository) FindByNames(db *gorm.DB, names []string) ([]entity.Role, error) {
	var roles []entity.Role
	err := db.Where("name IN ?", names).Order("name ASC").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
