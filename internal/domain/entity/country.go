package entity

// Country is the owner of a set of hotels
type Country struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"type:varchar(50);not null" json:"name"`
	ShortCode string `gorm:"type:varchar(2);not null" json:"shortCode"`
	LongCode  string `gorm:"type:varchar(3)" json:"longCode"`

	// Relationships
	Hotels []Hotel `gorm:"foreignKey:CountryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"hotels,omitempty"`
}

func (Country) TableName() string {
	return "countries"
}
