package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kingrain94/bhms-api/internal/domain"
	pkgutils "github.com/kingrain94/bhms-api/pkg/utils"
)

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

var exportHeader = []string{
	"Invoice ID", "Billing Month", "Room", "Tenant", "Room Charge", "Service Charge",
	"Extra Charge", "Discount", "Total", "Paid", "Outstanding", "Status", "Due Date",
}

// Export renders every invoice of a billing month. It returns the file body
// and its content type.
func (s *InvoiceService) Export(ctx context.Context, month string, format ExportFormat) ([]byte, string, error) {
	if _, err := pkgutils.ParseBillingMonth(month); err != nil {
		return nil, "", ErrInvalidMonth
	}
	invoices, err := s.repo.Invoice().ListAll(ctx, domain.InvoiceFilter{BillingMonth: month})
	if err != nil {
		return nil, "", fmt.Errorf("failed to list invoices: %w", err)
	}

	rows := make([][]string, 0, len(invoices)+1)
	rows = append(rows, exportHeader)
	for i := range invoices {
		rows = append(rows, exportRow(&invoices[i]))
	}

	switch format {
	case ExportXLSX:
		body, err := writeXLSX(month, rows)
		return body, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	case ExportCSV, "":
		body, err := writeCSV(rows)
		return body, "text/csv", err
	default:
		return nil, "", fmt.Errorf("unsupported export format %q: %w", format, ErrValidation)
	}
}

func exportRow(inv *domain.Invoice) []string {
	room, tenant := "", ""
	if inv.Room != nil {
		room = inv.Room.Name
	}
	if inv.Tenant != nil {
		tenant = inv.Tenant.FullName
	}
	return []string{
		inv.ID,
		inv.BillingMonth,
		room,
		tenant,
		inv.RoomCharge.StringFixed(2),
		inv.ServiceCharge.StringFixed(2),
		inv.ExtraCharge.StringFixed(2),
		inv.Discount.StringFixed(2),
		inv.TotalAmount.StringFixed(2),
		inv.PaidAmount.StringFixed(2),
		inv.Outstanding().StringFixed(2),
		string(inv.Status),
		formatDate(inv.DueDate),
	}
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func writeXLSX(month string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Invoices " + month
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
