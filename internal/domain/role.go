package domain

import "slices"

// Role represents a user role in the system
type Role string

const (
	// RoleAdmin operates the platform: owners, license keys and admin reports
	RoleAdmin Role = "admin"

	// RoleOwner runs boarding houses and manages their rooms, tenants and billing
	RoleOwner Role = "owner"

	// RoleTenant is a renter with a login account; sees own invoices and reports
	RoleTenant Role = "tenant"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleOwner, RoleTenant}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasAnyRole checks if role matches any of the required roles
func HasAnyRole(role string, requiredRoles ...Role) bool {
	return slices.Contains(requiredRoles, Role(role))
}
