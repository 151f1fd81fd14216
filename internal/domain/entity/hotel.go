package entity

// Hotel always belongs to exactly one country
type Hotel struct {
	ID        int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"type:varchar(150);not null" json:"name"`
	Address   string  `gorm:"type:varchar(250);not null" json:"address"`
	Rating    float64 `gorm:"not null;default:0" json:"rating"`
	CountryID int     `gorm:"not null;index" json:"countryId"`

	// Relationships
	Country *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

func (Hotel) TableName() string {
	return "hotels"
}
