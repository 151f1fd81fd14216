package entity

import "github.com/google/uuid"

// Role represents a user role in the system. The set is fixed and seeded by migration.
type Role struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	NormalizedName string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"normalizedName"`

	// Relationships
	Users []User `gorm:"many2many:user_roles" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role names
const (
	RoleUser          = "User"
	RoleAdministrator = "Administrator"
)

// Seeded role identifiers. These must match the role seed migration.
var (
	RoleIDUser          = uuid.MustParse("63a24af8-4baf-44b2-aa62-1d3ad1c40db0")
	RoleIDAdministrator = uuid.MustParse("b2ebb26f-9921-4a94-ac56-29ab2744f2d2")
)

// DefaultRoles returns the fixed role seed set
func DefaultRoles() []Role {
	return []Role{
		{ID: RoleIDUser, Name: RoleUser, NormalizedName: "USER"},
		{ID: RoleIDAdministrator, Name: RoleAdministrator, NormalizedName: "ADMINISTRATOR"},
	}
}
