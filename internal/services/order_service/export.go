package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/lib/logger/sl"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Commandes"

var exportHeader = []interface{}{
	"ID", "Date", "Client", "Email", "Téléphone", "Adresse", "Articles", "Total", "Statut", "Suivi", "Notes",
}

// ExportXLSX пишет все заказы (или только заданного статуса) в xlsx
func (s *OrderService) ExportXLSX(ctx context.Context, status models.OrderStatus, w io.Writer) error {
	const op = "services.OrderService.ExportXLSX"

	orders, err := s.ListOrders(ctx, status)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.log.Warn("failed to close workbook", slog.String("op", op), sl.Err(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, o := range orders {
		row := []interface{}{
			o.ID.String(),
			o.CreatedAt.Format("2006-01-02 15:04"),
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.ShippingAddress,
			itemsSummary(o.Items),
			o.TotalAmount,
			string(o.Status),
			models.Str(o.TrackingNumber),
			models.Str(o.Notes),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func itemsSummary(items models.OrderItems) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.Title, it.Quantity))
	}
	return strings.Join(parts, ", ")
}
