package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"line-restaurant/models"
)

type fakeOrderWriter struct {
	err error
	got []models.Order
}

func (w *fakeOrderWriter) AppendOrder(_ context.Context, o models.Order) error {
	if w.err != nil {
		return w.err
	}
	w.got = append(w.got, o)
	return nil
}

type fakeNotifier struct {
	err  error
	sent []string
}

func (n *fakeNotifier) Send(_ context.Context, message string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, message)
	return nil
}

func TestNewOrderIDFormat(t *testing.T) {
	at := time.Date(2024, 7, 5, 23, 30, 0, 0, time.UTC)
	re := regexp.MustCompile(`^ORDER\d{8}\d{3}$`)
	for i := 0; i < 20; i++ {
		id := NewOrderID(at)
		if !re.MatchString(id) {
			t.Fatalf("NewOrderID = %q, want ORDER<8 digits><3 digits>", id)
		}
		if !strings.HasPrefix(id, "ORDER20240705") {
			t.Errorf("date segment of %q should be 20240705", id)
		}
	}
}

func TestNewOrderIDUsesUTCDate(t *testing.T) {
	// 23:30 in UTC+7 is already the next day locally; the id must
	// still carry the UTC date.
	bangkok := time.FixedZone("ICT", 7*3600)
	at := time.Date(2024, 7, 6, 6, 30, 0, 0, bangkok) // 2024-07-05T23:30Z
	id := NewOrderID(at)
	if !strings.HasPrefix(id, "ORDER20240705") {
		t.Errorf("NewOrderID = %q, want UTC date 20240705", id)
	}
}

func seedCart(t *testing.T, store CartStore, userID string) {
	t.Helper()
	err := store.Update(context.Background(), userID, func(c *Cart) error {
		c.Add("padthai", "ผัดไทย", 60)
		c.Add("padthai", "ผัดไทย", 60)
		c.Add("icedtea", "ชาเย็น", 25)
		return nil
	})
	if err != nil {
		t.Fatalf("seed cart: %v", err)
	}
}

func TestConfirmWritesOrderAndResetsCart(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()
	writer := &fakeOrderWriter{}
	notifier := &fakeNotifier{}
	svc := &OrderService{Carts: store, Orders: writer, Notify: notifier}

	seedCart(t, store, "U1")

	confirmed, err := svc.Confirm(ctx, "U1")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if confirmed.Total != 145 {
		t.Errorf("confirmed total = %d, want 145", confirmed.Total)
	}
	if len(confirmed.Lines) != 2 {
		t.Errorf("confirmed lines = %d, want 2", len(confirmed.Lines))
	}

	if len(writer.got) != 1 {
		t.Fatalf("orders written = %d, want 1", len(writer.got))
	}
	order := writer.got[0]
	if order.Status != models.OrderStatusPending || order.PaymentStatus != models.PaymentStatusUnpaid {
		t.Errorf("order statuses = %q/%q, want pending/unpaid", order.Status, order.PaymentStatus)
	}
	if order.OrderID != confirmed.OrderID {
		t.Errorf("order id mismatch: %q vs %q", order.OrderID, confirmed.OrderID)
	}
	if !strings.Contains(order.ItemsSummary, "x2") {
		t.Errorf("items summary should contain x2: %q", order.ItemsSummary)
	}

	if len(notifier.sent) != 1 || !strings.Contains(notifier.sent[0], confirmed.OrderID) {
		t.Errorf("staff notify missing or lacks order id: %v", notifier.sent)
	}

	cart, _ := store.Snapshot(ctx, "U1")
	if !cart.Empty() {
		t.Errorf("cart not cleared after confirm: %+v", cart.Lines)
	}
	if cart.Total() != 0 {
		t.Errorf("cart total after confirm = %d, want 0", cart.Total())
	}
	if cart.LastOrderID != confirmed.OrderID {
		t.Errorf("LastOrderID = %q, want %q", cart.LastOrderID, confirmed.OrderID)
	}
}

func TestConfirmClearsCartWhenSideEffectsFail(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()
	writer := &fakeOrderWriter{err: errors.New("sheet down")}
	notifier := &fakeNotifier{err: errors.New("notify down")}
	svc := &OrderService{Carts: store, Orders: writer, Notify: notifier}

	seedCart(t, store, "U1")

	confirmed, err := svc.Confirm(ctx, "U1")
	if err != nil {
		t.Fatalf("Confirm must succeed despite failing side effects: %v", err)
	}
	if confirmed.OrderID == "" {
		t.Error("expected an order id")
	}

	cart, _ := store.Snapshot(ctx, "U1")
	if !cart.Empty() {
		t.Errorf("cart not cleared: %+v", cart.Lines)
	}
	if cart.LastOrderID != confirmed.OrderID {
		t.Errorf("LastOrderID = %q, want %q", cart.LastOrderID, confirmed.OrderID)
	}
}

func TestConfirmEmptyCartRejected(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()
	writer := &fakeOrderWriter{}
	svc := &OrderService{Carts: store, Orders: writer, Notify: &fakeNotifier{}}

	_, err := svc.Confirm(ctx, "U1")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("Confirm on empty cart: err = %v, want ErrEmptyCart", err)
	}
	if len(writer.got) != 0 {
		t.Errorf("no order must be written for an empty cart, got %d", len(writer.got))
	}
}

func TestConfirmKeepsLastOrderIDAcrossOrders(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()
	svc := &OrderService{Carts: store, Orders: &fakeOrderWriter{}, Notify: &fakeNotifier{}}

	seedCart(t, store, "U1")
	first, err := svc.Confirm(ctx, "U1")
	if err != nil {
		t.Fatalf("first Confirm: %v", err)
	}

	seedCart(t, store, "U1")
	second, err := svc.Confirm(ctx, "U1")
	if err != nil {
		t.Fatalf("second Confirm: %v", err)
	}

	cart, _ := store.Snapshot(ctx, "U1")
	if cart.LastOrderID != second.OrderID {
		t.Errorf("LastOrderID = %q, want most recent %q (first was %q)",
			cart.LastOrderID, second.OrderID, first.OrderID)
	}
}
