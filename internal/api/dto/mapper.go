package dto

import (
	"github.com/kingrain94/bhms-api/internal/domain"
)

// NewPage builds a page response from a normalised pagination.
func NewPage[T any](items []T, total int64, page domain.Pagination) PageResponse[T] {
	page.Normalize()
	if items == nil {
		items = []T{}
	}
	return PageResponse[T]{
		Items:    items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

// FromUser converts a User domain model to a UserResponse DTO
func FromUser(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Phone:       user.Phone,
		Role:        string(user.Role),
		Active:      user.Active,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

func FromUsers(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *FromUser(&users[i])
	}
	return responses
}

// ToBoardingHouse converts a BoardingHouseRequest DTO to a BoardingHouse domain model
func (r *BoardingHouseRequest) ToBoardingHouse() *domain.BoardingHouse {
	floors := r.TotalFloors
	if floors < 1 {
		floors = 1
	}
	return &domain.BoardingHouse{
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
		TotalFloors: floors,
	}
}

// ToRoom converts a CreateRoomRequest DTO to a Room domain model
func (r *CreateRoomRequest) ToRoom() *domain.Room {
	capacity := r.Capacity
	if capacity < 1 {
		capacity = 1
	}
	floor := r.Floor
	if floor < 1 {
		floor = 1
	}
	return &domain.Room{
		BoardingHouseID: r.BoardingHouseID,
		Name:            r.Name,
		Floor:           floor,
		Area:            r.Area,
		Price:           r.Price,
		Capacity:        capacity,
		Status:          domain.RoomAvailable,
		Description:     r.Description,
		ImageURLs:       domain.StringList{},
	}
}

// ApplyTo copies the fields present in the request onto room.
func (r *UpdateRoomRequest) ApplyTo(room *domain.Room) {
	if r.Name != nil {
		room.Name = *r.Name
	}
	if r.Floor != nil {
		room.Floor = *r.Floor
	}
	if r.Area != nil {
		room.Area = *r.Area
	}
	if r.Price != nil {
		room.Price = *r.Price
	}
	if r.Capacity != nil {
		room.Capacity = *r.Capacity
	}
	if r.Status != nil {
		room.Status = domain.RoomStatus(*r.Status)
	}
	if r.Description != nil {
		room.Description = *r.Description
	}
}

// ToService converts a ServiceRequest DTO to a Service domain model
func (r *ServiceRequest) ToService() *domain.Service {
	return &domain.Service{
		BoardingHouseID: r.BoardingHouseID,
		Name:            r.Name,
		Unit:            r.Unit,
		UnitPrice:       r.UnitPrice,
		Metered:         r.Metered,
	}
}

// ToTenant converts a CreateTenantRequest DTO to a Tenant domain model. The
// phone is stored as given; the service normalises it.
func (r *CreateTenantRequest) ToTenant() *domain.Tenant {
	return &domain.Tenant{
		FullName:    r.FullName,
		Phone:       r.Phone,
		Email:       r.Email,
		IDNumber:    r.IDNumber,
		DateOfBirth: r.DateOfBirth,
		Hometown:    r.Hometown,
		Status:      domain.TenantActive,
	}
}

func (r *UpdateTenantRequest) ApplyTo(tenant *domain.Tenant) {
	if r.FullName != nil {
		tenant.FullName = *r.FullName
	}
	if r.Phone != nil {
		tenant.Phone = *r.Phone
	}
	if r.Email != nil {
		tenant.Email = *r.Email
	}
	if r.IDNumber != nil {
		tenant.IDNumber = *r.IDNumber
	}
	if r.DateOfBirth != nil {
		tenant.DateOfBirth = r.DateOfBirth
	}
	if r.Hometown != nil {
		tenant.Hometown = *r.Hometown
	}
}

func (r *UpdateInvoiceRequest) ApplyTo(invoice *domain.Invoice) {
	if r.ExtraCharge != nil {
		invoice.ExtraCharge = *r.ExtraCharge
	}
	if r.Discount != nil {
		invoice.Discount = *r.Discount
	}
	if r.DueDate != nil {
		invoice.DueDate = *r.DueDate
	}
	if r.Note != nil {
		invoice.Note = *r.Note
	}
}
