package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

type Room struct {
	Base
	OwnerID         string          `gorm:"type:uuid;not null;index" json:"owner_id"`
	BoardingHouseID string          `gorm:"type:uuid;not null;uniqueIndex:idx_rooms_house_name" json:"boarding_house_id"`
	Name            string          `gorm:"type:text;not null;uniqueIndex:idx_rooms_house_name" json:"name"`
	Floor           int             `gorm:"not null;default:1" json:"floor"`
	Area            decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0" json:"area"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Capacity        int             `gorm:"not null;default:1" json:"capacity"`
	Status          RoomStatus      `gorm:"type:text;not null;default:'available'" json:"status"`
	Description     string          `gorm:"type:text" json:"description"`
	ImageURLs       StringList      `gorm:"type:jsonb" json:"image_urls"`
	BoardingHouse   *BoardingHouse  `gorm:"foreignKey:BoardingHouseID" json:"boarding_house,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

type RoomFilter struct {
	Pagination
	BoardingHouseID string `json:"boarding_house_id"`
	Status          string `json:"status"`
}

// StatusForOccupancy returns the status a room should have given the number
// of active contracts on it. Rooms under maintenance keep that status.
func (r *Room) StatusForOccupancy(activeContracts int64) RoomStatus {
	if r.Status == RoomMaintenance {
		return RoomMaintenance
	}
	if activeContracts > 0 {
		return RoomOccupied
	}
	return RoomAvailable
}

// StringList is a []string persisted as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
	return json.Unmarshal(raw, (*[]string)(l))
}
