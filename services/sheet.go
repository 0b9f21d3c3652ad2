package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"line-restaurant/models"
)

const (
	menuRange   = "Menu!A2:H"
	ordersRange = "Orders!A:G"
)

// SheetStore reads the menu from and appends orders to one
// spreadsheet. No caching: every lookup re-fetches.
type SheetStore struct {
	srv           *sheets.Service
	spreadsheetID string
}

func NewSheetStore(ctx context.Context, credentialsFile, spreadsheetID string) (*SheetStore, error) {
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &SheetStore{srv: srv, spreadsheetID: spreadsheetID}, nil
}

// ItemsByCategory returns the available menu rows whose category
// matches exactly. An empty result is normal, not an error.
func (s *SheetStore) ItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, menuRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}

	var items []models.MenuItem
	for _, row := range resp.Values {
		item, ok := parseMenuRow(row)
		if !ok {
			continue
		}
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

// parseMenuRow maps a Menu row [id, name, category, price, imageUrl,
// _, available, description] to a MenuItem. Rows that are short,
// unavailable, or carry an unparseable price are skipped.
func parseMenuRow(row []interface{}) (models.MenuItem, bool) {
	if len(row) < 7 {
		return models.MenuItem{}, false
	}
	if cellString(row, 6) != "TRUE" {
		return models.MenuItem{}, false
	}
	price, err := strconv.ParseInt(cellString(row, 3), 10, 64)
	if err != nil {
		return models.MenuItem{}, false
	}
	return models.MenuItem{
		ID:          cellString(row, 0),
		Name:        cellString(row, 1),
		Category:    cellString(row, 2),
		Price:       price,
		ImageURL:    cellString(row, 4),
		Description: cellString(row, 7),
	}, true
}

func cellString(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}

// AppendOrder writes one row to the Orders sheet:
// [timestamp, userId, itemsSummary, total, status, paymentStatus, orderId].
func (s *SheetStore) AppendOrder(ctx context.Context, order models.Order) error {
	vr := &sheets.ValueRange{
		Values: [][]interface{}{{
			order.CreatedAt.Format(time.RFC3339),
			order.UserID,
			order.ItemsSummary,
			order.Total,
			order.Status,
			order.PaymentStatus,
			order.OrderID,
		}},
	}
	_, err := s.srv.Spreadsheets.Values.Append(s.spreadsheetID, ordersRange, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append order: %w", err)
	}
	return nil
}
