package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"line-restaurant/models"
)

// ErrEmptyCart is returned when a user confirms with nothing in the
// cart.
var ErrEmptyCart = errors.New("cart is empty")

// OrderWriter appends a confirmed order to the external store.
type OrderWriter interface {
	AppendOrder(ctx context.Context, order models.Order) error
}

// Notifier pushes a plain-text message to staff.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// ConfirmedOrder is the cart snapshot taken at confirmation, before
// the cart is reset.
type ConfirmedOrder struct {
	OrderID string
	Lines   []CartLine
	Total   int64
}

// OrderService turns a cart into a confirmed order.
type OrderService struct {
	Carts  CartStore
	Orders OrderWriter
	Notify Notifier
}

// NewOrderID returns "ORDER<YYYYMMDD><3-digit-random>" for the given
// time. The suffix is non-cryptographic and collides about once in a
// thousand per day, which is fine at this order volume.
func NewOrderID(t time.Time) string {
	return fmt.Sprintf("ORDER%s%03d", t.UTC().Format("20060102"), rand.Intn(1000))
}

// Confirm snapshots the user's cart, notifies staff and appends the
// order to the external store (both best-effort), then clears the
// cart keeping only the order id. Once the id is generated there is
// no rollback: notify and append failures are logged and the
// confirmation proceeds. The whole sequence runs under the user's
// cart lock so it cannot interleave with add/remove events from the
// same user.
func (s *OrderService) Confirm(ctx context.Context, userID string) (ConfirmedOrder, error) {
	var confirmed ConfirmedOrder
	err := s.Carts.Update(ctx, userID, func(cart *Cart) error {
		if cart.Empty() {
			return ErrEmptyCart
		}

		now := time.Now().UTC()
		orderID := NewOrderID(now)
		snapshot := cart.Clone()

		BestEffort("order notify", func() error {
			return s.Notify.Send(ctx, fmt.Sprintf("📋 ออเดอร์ใหม่!\nOrder ID: %s\n%s", orderID, snapshot.OrderDetails()))
		})
		BestEffort("order append", func() error {
			return s.Orders.AppendOrder(ctx, models.Order{
				OrderID:       orderID,
				UserID:        userID,
				ItemsSummary:  snapshot.ItemsSummary(),
				Total:         snapshot.Total(),
				Status:        models.OrderStatusPending,
				PaymentStatus: models.PaymentStatusUnpaid,
				CreatedAt:     now,
			})
		})

		cart.LastOrderID = orderID
		cart.Lines = nil

		confirmed = ConfirmedOrder{OrderID: orderID, Lines: snapshot.Lines, Total: snapshot.Total()}
		return nil
	})
	if err != nil {
		return ConfirmedOrder{}, err
	}
	return confirmed, nil
}
