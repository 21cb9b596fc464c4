package domain

import "github.com/shopspring/decimal"

// Service is a billable utility offered by a boarding house (electricity,
// water, wifi, parking...). Metered services are billed by usage entered on
// the invoice, the others by the quantity configured on the room.
type Service struct {
	Base
	OwnerID         string          `gorm:"type:uuid;not null;index" json:"owner_id"`
	BoardingHouseID string          `gorm:"type:uuid;not null;index" json:"boarding_house_id"`
	Name            string          `gorm:"type:text;not null" json:"name"`
	Unit            string          `gorm:"type:text;not null" json:"unit"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Metered         bool            `gorm:"not null;default:false" json:"metered"`
}

func (Service) TableName() string {
	return "services"
}

type RoomService struct {
	Base
	RoomID    string          `gorm:"type:uuid;not null;uniqueIndex:idx_room_services_pair" json:"room_id"`
	ServiceID string          `gorm:"type:uuid;not null;uniqueIndex:idx_room_services_pair" json:"service_id"`
	Quantity  decimal.Decimal `gorm:"type:numeric(10,2);not null;default:1" json:"quantity"`
	Service   *Service        `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (RoomService) TableName() string {
	return "room_services"
}
