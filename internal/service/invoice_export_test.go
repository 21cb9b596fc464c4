package service

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kingrain94/bhms-api/internal/domain"
)

func (s *InvoiceServiceTestSuite) exportedInvoices() []domain.Invoice {
	return []domain.Invoice{
		{
			Base:          domain.Base{ID: "inv-1"},
			BillingMonth:  "2025-03",
			RoomCharge:    dec("3000000"),
			ServiceCharge: dec("450000"),
			ExtraCharge:   dec("0"),
			Discount:      dec("50000"),
			TotalAmount:   dec("3400000"),
			PaidAmount:    dec("1000000"),
			Status:        domain.InvoicePartiallyPaid,
			DueDate:       time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
			Room:          &domain.Room{Name: "101"},
			Tenant:        &domain.Tenant{FullName: "Nguyen Van A"},
		},
	}
}

func (s *InvoiceServiceTestSuite) TestExport_CSV() {
	// Arrange
	ctx := ownerCtx()
	s.repos.invoice.On("ListAll", ctx, domain.InvoiceFilter{BillingMonth: "2025-03"}).Return(s.exportedInvoices(), nil)

	// Act
	body, contentType, err := s.service.Export(ctx, "2025-03", ExportCSV)

	// Assert
	s.Require().NoError(err)
	s.Equal("text/csv", contentType)
	rows, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(exportHeader, rows[0])
	s.Equal([]string{
		"inv-1", "2025-03", "101", "Nguyen Van A", "3000000.00", "450000.00", "0.00",
		"50000.00", "3400000.00", "1000000.00", "2400000.00", "partially_paid", "2025-03-08",
	}, rows[1])
}

func (s *InvoiceServiceTestSuite) TestExport_XLSX() {
	// Arrange
	ctx := ownerCtx()
	s.repos.invoice.On("ListAll", ctx, domain.InvoiceFilter{BillingMonth: "2025-03"}).Return(s.exportedInvoices(), nil)

	// Act
	body, contentType, err := s.service.Export(ctx, "2025-03", ExportXLSX)

	// Assert
	s.Require().NoError(err)
	s.Contains(contentType, "spreadsheetml")
	f, err := excelize.OpenReader(bytes.NewReader(body))
	s.Require().NoError(err)
	defer f.Close()
	rows, err := f.GetRows("Invoices 2025-03")
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("Invoice ID", rows[0][0])
	s.Equal("2400000.00", rows[1][10])
}

func (s *InvoiceServiceTestSuite) TestExport_Rejections() {
	ctx := ownerCtx()
	_, _, err := s.service.Export(ctx, "2025-13", ExportCSV)
	s.ErrorIs(err, ErrInvalidMonth)

	s.repos.invoice.On("ListAll", ctx, domain.InvoiceFilter{BillingMonth: "2025-03"}).Return(nil, nil)
	_, _, err = s.service.Export(ctx, "2025-03", ExportFormat("pdf"))
	s.ErrorIs(err, ErrValidation)
}
