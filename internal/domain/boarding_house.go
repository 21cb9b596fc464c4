package domain

type BoardingHouse struct {
	Base
	OwnerID     string `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string `gorm:"type:text;not null" json:"name"`
	Address     string `gorm:"type:text;not null" json:"address"`
	Description string `gorm:"type:text" json:"description"`
	TotalFloors int    `gorm:"not null;default:1" json:"total_floors"`
}

func (BoardingHouse) TableName() string {
	return "boarding_houses"
}
