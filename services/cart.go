package services

import (
	"fmt"
	"strings"
)

// CartLine is one selected item in a cart. Lines keep the order in
// which items were first added; a line never stays at Qty 0.
type CartLine struct {
	ItemID    string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Qty       int    `json:"qty"`
}

// Cart is the per-user in-progress order. LastOrderID is set on
// confirmation and survives the item reset so the receipt can be
// shown again.
type Cart struct {
	Lines       []CartLine `json:"lines"`
	LastOrderID string     `json:"last_order_id,omitempty"`
}

// Add increments the quantity of itemID, inserting a new line at the
// end when the item is not in the cart yet. An unknown item arrives
// here with price 0; that is not guarded against.
func (c *Cart) Add(itemID, name string, unitPrice int64) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Qty++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{ItemID: itemID, Name: name, UnitPrice: unitPrice, Qty: 1})
}

// Remove decrements the quantity of itemID and drops the line when it
// reaches zero. Removing an absent item is a no-op.
func (c *Cart) Remove(itemID string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID != itemID {
			continue
		}
		c.Lines[i].Qty--
		if c.Lines[i].Qty <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return
	}
}

// Total recomputes the cart total on every call; it is never cached.
func (c *Cart) Total() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.UnitPrice * int64(l.Qty)
	}
	return sum
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Clone returns a deep copy so callers can render without holding the
// user's lock.
func (c *Cart) Clone() Cart {
	cp := Cart{LastOrderID: c.LastOrderID}
	cp.Lines = make([]CartLine, len(c.Lines))
	copy(cp.Lines, c.Lines)
	return cp
}

// ItemsSummary renders the one-line listing written to the Orders
// sheet: "ผัดไทย x2, ชาเย็น x1".
func (c *Cart) ItemsSummary() string {
	parts := make([]string, 0, len(c.Lines))
	for _, l := range c.Lines {
		parts = append(parts, fmt.Sprintf("%s x%d", l.Name, l.Qty))
	}
	return strings.Join(parts, ", ")
}

// OrderDetails renders the itemized listing sent to staff: one line
// per item with its line total, then the grand total, in insertion
// order.
func (c *Cart) OrderDetails() string {
	var b strings.Builder
	b.WriteString("รายการ:\n")
	for _, l := range c.Lines {
		fmt.Fprintf(&b, "- %s x%d = ฿%d\n", l.Name, l.Qty, l.UnitPrice*int64(l.Qty))
	}
	fmt.Fprintf(&b, "\nรวม: ฿%d", c.Total())
	return b.String()
}
