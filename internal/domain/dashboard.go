package domain

import "github.com/shopspring/decimal"

type MonthlyRevenue struct {
	BillingMonth string          `json:"billing_month"`
	Billed       decimal.Decimal `json:"billed"`
	Collected    decimal.Decimal `json:"collected"`
}

type OwnerDashboard struct {
	BoardingHouses     int64            `json:"boarding_houses"`
	RoomsByStatus      map[string]int64 `json:"rooms_by_status"`
	TotalRooms         int64            `json:"total_rooms"`
	ActiveTenants      int64            `json:"active_tenants"`
	ActiveContracts    int64            `json:"active_contracts"`
	CurrentMonth       string           `json:"current_month"`
	CurrentBilled      decimal.Decimal  `json:"current_billed"`
	CurrentCollected   decimal.Decimal  `json:"current_collected"`
	CurrentOutstanding decimal.Decimal  `json:"current_outstanding"`
	UnpaidInvoices     int64            `json:"unpaid_invoices"`
	OverdueInvoices    int64            `json:"overdue_invoices"`
	PendingReports     int64            `json:"pending_reports"`
	Revenue            []MonthlyRevenue `json:"revenue"`
}

type AdminDashboard struct {
	OwnersByStatus      map[string]int64 `json:"owners_by_status"`
	ActiveSubscriptions int64            `json:"active_subscriptions"`
	BoardingHouses      int64            `json:"boarding_houses"`
	Rooms               int64            `json:"rooms"`
	Tenants             int64            `json:"tenants"`
	LicenseRevenue      decimal.Decimal  `json:"license_revenue"`
	PendingAdminReports int64            `json:"pending_admin_reports"`
}
