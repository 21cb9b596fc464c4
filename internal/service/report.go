package service

import (
	"context"
	"fmt"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

// ReportService handles tenant to owner reports and owner to admin reports.
type ReportService struct {
	repo     repository.Repository
	notifier Notifier
	logger   *logger.Logger
}

func NewReportService(repo repository.Repository, notifier Notifier, logger *logger.Logger) *ReportService {
	return &ReportService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Create files a report from the calling tenant to their owner.
func (s *ReportService) Create(ctx context.Context, req dto.CreateReportRequest) (*domain.Report, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return nil, notFound(err, ErrTenantNotFound)
	}

	category := domain.ReportCategory(req.Category)
	if category == "" {
		category = domain.ReportOther
	}
	report := &domain.Report{
		OwnerID:  tenant.OwnerID,
		TenantID: tenant.ID,
		RoomID:   tenant.RoomID,
		Title:    req.Title,
		Content:  req.Content,
		Category: category,
		Status:   domain.ReportPending,
	}
	if err := s.repo.Report().Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	if owner, err := s.repo.Owner().GetByID(ctx, tenant.OwnerID); err == nil {
		s.notifier.Notify(ctx, owner.UserID, domain.NotificationReportCreated, "New report",
			fmt.Sprintf("%s reported: %s", tenant.FullName, report.Title), report.ID)
	} else {
		s.logger.Error("failed to load owner for report notification", err)
	}
	return report, nil
}

// List returns the owner's reports, or the caller's own when it is a tenant.
func (s *ReportService) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, int64, error) {
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	if identity.Role == string(domain.RoleTenant) {
		filter.TenantID = identity.TenantID
	}
	return s.repo.Report().List(ctx, filter)
}

func (s *ReportService) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	report, err := s.repo.Report().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrReportNotFound)
	}
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if identity.Role == string(domain.RoleTenant) && report.TenantID != identity.TenantID {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// Update sets status and response. The tenant is notified of any change.
func (s *ReportService) Update(ctx context.Context, id string, req dto.UpdateReportRequest) (*domain.Report, error) {
	if !domain.IsValidReportStatus(req.Status) {
		return nil, fmt.Errorf("unknown report status %q: %w", req.Status, ErrValidation)
	}
	report, err := s.repo.Report().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrReportNotFound)
	}

	changed := report.Status != domain.ReportStatus(req.Status) || report.Response != req.Response
	report.Status = domain.ReportStatus(req.Status)
	report.Response = req.Response
	if err := s.repo.Report().Update(ctx, report); err != nil {
		return nil, notFound(err, ErrReportNotFound)
	}

	if changed {
		tenant, err := s.repo.Tenant().GetByID(ctx, report.TenantID)
		if err == nil && tenant.UserID != nil {
			s.notifier.Notify(ctx, *tenant.UserID, domain.NotificationReportUpdated, "Report updated",
				fmt.Sprintf("Your report %q is now %s.", report.Title, report.Status), report.ID)
		}
	}
	return report, nil
}

// CreateAdmin files a report from the calling owner to the platform admins.
func (s *ReportService) CreateAdmin(ctx context.Context, req dto.CreateAdminReportRequest) (*domain.ReportAdmin, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	report := &domain.ReportAdmin{
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
		Status:  domain.ReportPending,
	}
	if err := s.repo.AdminReport().Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create admin report: %w", err)
	}
	return report, nil
}

// ListAdmin lists admin reports. Owners only see their own.
func (s *ReportService) ListAdmin(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportAdmin, int64, error) {
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	switch identity.Role {
	case string(domain.RoleAdmin):
	case string(domain.RoleOwner):
		filter.OwnerID = identity.OwnerID
	default:
		return nil, 0, ErrForbidden
	}
	return s.repo.AdminReport().List(ctx, filter)
}

func (s *ReportService) GetAdmin(ctx context.Context, id string) (*domain.ReportAdmin, error) {
	report, err := s.repo.AdminReport().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrReportNotFound)
	}
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if identity.Role != string(domain.RoleAdmin) && (identity.Role != string(domain.RoleOwner) || report.OwnerID != identity.OwnerID) {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// RespondAdmin is the admin side of an admin report.
func (s *ReportService) RespondAdmin(ctx context.Context, id string, req dto.UpdateReportRequest) (*domain.ReportAdmin, error) {
	if !domain.IsValidReportStatus(req.Status) {
		return nil, fmt.Errorf("unknown report status %q: %w", req.Status, ErrValidation)
	}
	report, err := s.repo.AdminReport().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrReportNotFound)
	}

	changed := report.Status != domain.ReportStatus(req.Status) || report.Response != req.Response
	report.Status = domain.ReportStatus(req.Status)
	report.Response = req.Response
	if err := s.repo.AdminReport().Update(ctx, report); err != nil {
		return nil, notFound(err, ErrReportNotFound)
	}

	if changed {
		if owner, err := s.repo.Owner().GetByID(ctx, report.OwnerID); err == nil {
			s.notifier.Notify(ctx, owner.UserID, domain.NotificationReportUpdated, "Report updated",
				fmt.Sprintf("Your report %q is now %s.", report.Title, report.Status), report.ID)
		}
	}
	return report, nil
}
