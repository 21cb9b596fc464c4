package domain

type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"
	ReportInProgress ReportStatus = "in_progress"
	ReportResolved   ReportStatus = "resolved"
)

// IsValidReportStatus checks a status sent by a client.
func IsValidReportStatus(s string) bool {
	switch ReportStatus(s) {
	case ReportPending, ReportInProgress, ReportResolved:
		return true
	}
	return false
}

type ReportCategory string

const (
	ReportMaintenance ReportCategory = "maintenance"
	ReportComplaint   ReportCategory = "complaint"
	ReportOther       ReportCategory = "other"
)

// Report is filed by a tenant to their owner.
type Report struct {
	Base
	OwnerID  string         `gorm:"type:uuid;not null;index" json:"owner_id"`
	TenantID string         `gorm:"type:uuid;not null;index" json:"tenant_id"`
	RoomID   *string        `gorm:"type:uuid" json:"room_id,omitempty"`
	Title    string         `gorm:"type:text;not null" json:"title"`
	Content  string         `gorm:"type:text;not null" json:"content"`
	Category ReportCategory `gorm:"type:text;not null;default:'other'" json:"category"`
	Status   ReportStatus   `gorm:"type:text;not null;default:'pending'" json:"status"`
	Response string         `gorm:"type:text" json:"response"`
	Tenant   *Tenant        `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}

// ReportAdmin is filed by an owner to the platform admins.
type ReportAdmin struct {
	Base
	OwnerID  string       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title    string       `gorm:"type:text;not null" json:"title"`
	Content  string       `gorm:"type:text;not null" json:"content"`
	Status   ReportStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	Response string       `gorm:"type:text" json:"response"`
	Owner    *Owner       `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (ReportAdmin) TableName() string {
	return "report_admins"
}

type ReportFilter struct {
	Pagination
	OwnerID  string `json:"owner_id"`
	TenantID string `json:"tenant_id"`
	Status   string `json:"status"`
}
