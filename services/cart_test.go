package services

import (
	"context"
	"strings"
	"sync"
	"testing"
)

func TestCartAddAndTotal(t *testing.T) {
	var c Cart
	c.Add("padthai", "ผัดไทย", 60)
	c.Add("padthai", "ผัดไทย", 60)
	c.Add("icedtea", "ชาเย็น", 25)

	if got := c.Total(); got != 145 {
		t.Errorf("Total() = %d, want 145", got)
	}
	if len(c.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(c.Lines))
	}
	if c.Lines[0].ItemID != "padthai" || c.Lines[0].Qty != 2 {
		t.Errorf("first line = %+v, want padthai qty 2", c.Lines[0])
	}
}

func TestCartAddRemoveSequences(t *testing.T) {
	type op struct {
		kind string // "add" or "remove"
		item string
	}
	tests := []struct {
		name      string
		ops       []op
		wantTotal int64
		wantLines int
	}{
		{"empty", nil, 0, 0},
		{"single add", []op{{"add", "padthai"}}, 60, 1},
		{"add then remove", []op{{"add", "padthai"}, {"remove", "padthai"}}, 0, 0},
		{"remove absent", []op{{"remove", "padthai"}}, 0, 0},
		{"remove below zero", []op{{"add", "padthai"}, {"remove", "padthai"}, {"remove", "padthai"}}, 0, 0},
		{"mixed", []op{{"add", "padthai"}, {"add", "tomyum"}, {"add", "padthai"}, {"remove", "tomyum"}}, 120, 1},
		{"unknown item priced zero", []op{{"add", "mystery"}}, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			for _, o := range tt.ops {
				switch o.kind {
				case "add":
					c.Add(o.item, NameOf(o.item), PriceOf(o.item))
				case "remove":
					c.Remove(o.item)
				}
			}
			if got := c.Total(); got != tt.wantTotal {
				t.Errorf("Total() = %d, want %d", got, tt.wantTotal)
			}
			if len(c.Lines) != tt.wantLines {
				t.Errorf("len(Lines) = %d, want %d", len(c.Lines), tt.wantLines)
			}
			for _, l := range c.Lines {
				if l.Qty <= 0 {
					t.Errorf("line %s persisted with qty %d", l.ItemID, l.Qty)
				}
			}
		})
	}
}

func TestCartRemoveDropsLineAtZero(t *testing.T) {
	var c Cart
	c.Add("padthai", "ผัดไทย", 60)
	c.Remove("padthai")
	for _, l := range c.Lines {
		if l.ItemID == "padthai" {
			t.Errorf("padthai still present after removal: %+v", l)
		}
	}
}

func TestCartRemoveAbsentIsNoOp(t *testing.T) {
	var c Cart
	c.Add("padthai", "ผัดไทย", 60)
	before := c.Clone()
	c.Remove("tomyum")
	if c.Total() != before.Total() || len(c.Lines) != len(before.Lines) {
		t.Errorf("cart changed by removing absent item: %+v", c.Lines)
	}
}

func TestCartOrderDetails(t *testing.T) {
	var c Cart
	c.Add("padthai", "ผัดไทย", 60)
	c.Add("padthai", "ผัดไทย", 60)

	details := c.OrderDetails()
	if !strings.Contains(details, "x2") {
		t.Errorf("OrderDetails should contain x2: %s", details)
	}
	if !strings.Contains(details, "120") {
		t.Errorf("OrderDetails should contain 120: %s", details)
	}
}

func TestCartItemsSummaryInsertionOrder(t *testing.T) {
	var c Cart
	c.Add("icedtea", "ชาเย็น", 25)
	c.Add("padthai", "ผัดไทย", 60)
	c.Add("icedtea", "ชาเย็น", 25)

	got := c.ItemsSummary()
	want := "ชาเย็น x2, ผัดไทย x1"
	if got != want {
		t.Errorf("ItemsSummary() = %q, want %q", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var c Cart
	c.Add("padthai", "ผัดไทย", 60)
	cp := c.Clone()
	c.Add("padthai", "ผัดไทย", 60)
	if cp.Lines[0].Qty != 1 {
		t.Errorf("clone mutated by original: qty = %d, want 1", cp.Lines[0].Qty)
	}
}

func TestMemoryStoreConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update(ctx, "U1", func(c *Cart) error {
				c.Add("padthai", "ผัดไทย", 60)
				return nil
			})
		}()
	}
	wg.Wait()

	cart, err := store.Snapshot(ctx, "U1")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Qty != n {
		t.Errorf("concurrent adds lost updates: %+v, want qty %d", cart.Lines, n)
	}
}

func TestMemoryStoreIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()

	_ = store.Update(ctx, "U1", func(c *Cart) error {
		c.Add("padthai", "ผัดไทย", 60)
		return nil
	})
	cart, err := store.Snapshot(ctx, "U2")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !cart.Empty() {
		t.Errorf("fresh user's cart not empty: %+v", cart.Lines)
	}
}
