package service

import (
	"errors"
	"fmt"

	"github.com/kingrain94/bhms-api/internal/repository"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
	// ErrPaymentRequired is returned when an owner has no active subscription.
	ErrPaymentRequired = errors.New("active subscription required")
	ErrUnauthorized    = errors.New("unauthorized")

	// Not found
	ErrUserNotFound          = fmt.Errorf("user %w", ErrNotFound)
	ErrOwnerNotFound         = fmt.Errorf("owner %w", ErrNotFound)
	ErrBoardingHouseNotFound = fmt.Errorf("boarding house %w", ErrNotFound)
	ErrRoomNotFound          = fmt.Errorf("room %w", ErrNotFound)
	ErrServiceNotFound       = fmt.Errorf("service %w", ErrNotFound)
	ErrTenantNotFound        = fmt.Errorf("tenant %w", ErrNotFound)
	ErrContractNotFound      = fmt.Errorf("contract %w", ErrNotFound)
	ErrNoActiveContract      = fmt.Errorf("active contract %w", ErrNotFound)
	ErrInvoiceNotFound       = fmt.Errorf("invoice %w", ErrNotFound)
	ErrPaymentNotFound       = fmt.Errorf("payment %w", ErrNotFound)
	ErrReportNotFound        = fmt.Errorf("report %w", ErrNotFound)
	ErrNotificationNotFound  = fmt.Errorf("notification %w", ErrNotFound)
	ErrLicenseKeyNotFound    = fmt.Errorf("license key %w", ErrNotFound)

	// Conflicts
	ErrEmailAlreadyExists   = fmt.Errorf("email already exists: %w", ErrConflict)
	ErrHouseHasRooms        = fmt.Errorf("boarding house still has rooms: %w", ErrConflict)
	ErrRoomNameTaken        = fmt.Errorf("room name already used in this boarding house: %w", ErrConflict)
	ErrRoomHasTenants       = fmt.Errorf("room has active tenants: %w", ErrConflict)
	ErrRoomHasHistory       = fmt.Errorf("room has contracts or invoices: %w", ErrConflict)
	ErrTenantHasHistory     = fmt.Errorf("tenant has contracts or invoices: %w", ErrConflict)
	ErrCapacityTooLow       = fmt.Errorf("capacity is below the number of active contracts: %w", ErrConflict)
	ErrServiceNotInHouse    = fmt.Errorf("service belongs to another boarding house: %w", ErrValidation)
	ErrRoomFull             = fmt.Errorf("room is at capacity: %w", ErrConflict)
	ErrRoomUnderMaintenance = fmt.Errorf("room is under maintenance: %w", ErrConflict)
	ErrServiceAttached      = fmt.Errorf("service already attached to room: %w", ErrConflict)
	ErrTenantHasContract    = fmt.Errorf("tenant has an active contract: %w", ErrConflict)
	ErrContractNotActive    = fmt.Errorf("contract is not active: %w", ErrConflict)
	ErrInvoiceExists        = fmt.Errorf("invoice already exists for this room and month: %w", ErrConflict)
	ErrInvoiceNotEditable   = fmt.Errorf("invoice can no longer be changed: %w", ErrConflict)
	ErrInvoiceHasPayments   = fmt.Errorf("invoice has payments: %w", ErrConflict)
	ErrInvoiceSettled       = fmt.Errorf("invoice has no outstanding balance: %w", ErrConflict)
	ErrLicenseKeyUsed       = fmt.Errorf("license key is not available: %w", ErrConflict)
	ErrOwnerNotPending      = fmt.Errorf("owner is not pending approval: %w", ErrConflict)
	ErrSweepInProgress      = fmt.Errorf("sweep already running: %w", ErrConflict)

	// Validation
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	ErrInvalidResetToken  = fmt.Errorf("invalid or expired reset token: %w", ErrValidation)
	ErrWrongPassword      = fmt.Errorf("current password is incorrect: %w", ErrValidation)
	ErrInvalidPhone       = fmt.Errorf("invalid phone number: %w", ErrValidation)
	ErrWeakPassword       = fmt.Errorf("password must be at least 8 characters: %w", ErrValidation)
	ErrInvalidMonth       = fmt.Errorf("billing month must be YYYY-MM: %w", ErrValidation)
	ErrAmountTooLarge     = fmt.Errorf("amount exceeds outstanding balance: %w", ErrValidation)
	ErrInvalidAmount      = fmt.Errorf("amount must be positive: %w", ErrValidation)
	ErrInvalidDateRange   = fmt.Errorf("end date must be after start date: %w", ErrValidation)
	ErrPaymentsDisabled   = fmt.Errorf("online payments are not configured: %w", ErrValidation)
	ErrInvalidSignature   = fmt.Errorf("invalid webhook signature: %w", ErrValidation)
	ErrRoomLimitReached   = fmt.Errorf("subscription room limit reached: %w", ErrPaymentRequired)

	// Forbidden
	ErrAccountInactive = fmt.Errorf("account is inactive: %w", ErrForbidden)
	ErrOwnerLocked     = fmt.Errorf("owner account is locked: %w", ErrForbidden)
	ErrOwnerPending    = fmt.Errorf("owner account is pending approval: %w", ErrForbidden)
)

// notFound maps repository.ErrNotFound to the given service error.
func notFound(err, target error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return target
	}
	return err
}
