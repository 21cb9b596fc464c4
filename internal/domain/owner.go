package domain

type OwnerStatus string

const (
	OwnerPending OwnerStatus = "pending"
	OwnerActive  OwnerStatus = "active"
	OwnerLocked  OwnerStatus = "locked"
)

// Owner is the landlord profile attached to an owner-role user. Every
// owner-scoped row in the system references Owner.ID.
type Owner struct {
	Base
	UserID       string      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	BusinessName string      `gorm:"type:text" json:"business_name"`
	Phone        string      `gorm:"type:text" json:"phone"`
	Address      string      `gorm:"type:text" json:"address"`
	Status       OwnerStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	User         *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Owner) TableName() string {
	return "owners"
}

type OwnerFilter struct {
	Pagination
	Status string `json:"status"`
	Search string `json:"search"`
}
