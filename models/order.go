package models

import "time"

// Order is a confirmed order as written to the Orders sheet. The
// process keeps only the generated OrderID after the append.
type Order struct {
	OrderID       string
	UserID        string
	ItemsSummary  string
	Total         int64
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
}

const (
	OrderStatusPending  = "pending"
	PaymentStatusUnpaid = "unpaid"
)
