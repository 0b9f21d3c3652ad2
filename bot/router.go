package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"line-restaurant/services"
)

// textRoute pairs a predicate with its handler. Routes are evaluated
// in slice order and the first match wins; the priority lives here,
// not in scattered conditionals.
type textRoute struct {
	name   string
	match  func(text string) bool
	handle func(ctx context.Context, ev *linebot.Event, text string) error
}

func equalsAny(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if text == w {
				return true
			}
		}
		return false
	}
}

func containsAny(subs ...string) func(string) bool {
	return func(text string) bool {
		for _, s := range subs {
			if strings.Contains(text, s) {
				return true
			}
		}
		return false
	}
}

func (b *Bot) textRoutes() []textRoute {
	return []textRoute{
		{"order", equalsAny("สั่งอาหาร", "order"), b.showCategories},
		{"promotions", equalsAny("โปรโมชั่น", "โปร"), b.showPromotions},
		{"recommended", equalsAny("เมนูแนะนำ"), b.showRecommended},
		{"contact", equalsAny("ติดต่อ", "help"), b.contactStaff},
		{"cart", equalsAny("ดูตะกร้า", "cart"), b.showCart},
		{"bill", equalsAny("เช็คบิล", "บิล"), b.showBill},
		{"category", containsAny(
			"อาหารจานเดียว", "กับข้าว", "สลัด",
			"ต้ม", "เครื่องดื่ม", "ของหวาน",
		), b.showCategoryMenu},
	}
}

func (b *Bot) showCategories(ctx context.Context, ev *linebot.Event, _ string) error {
	return b.reply.Reply(ctx, ev.ReplyToken, categoryFlex())
}

func (b *Bot) showPromotions(ctx context.Context, ev *linebot.Event, _ string) error {
	return b.reply.Reply(ctx, ev.ReplyToken, promotionFlex())
}

func (b *Bot) showRecommended(ctx context.Context, ev *linebot.Event, _ string) error {
	return b.reply.Reply(ctx, ev.ReplyToken, recommendedFlex())
}

func (b *Bot) contactStaff(ctx context.Context, ev *linebot.Event, _ string) error {
	services.BestEffort("contact notify", func() error {
		return b.notify.Send(ctx, "มีลูกค้าต้องการติดต่อ! UserID: "+ev.Source.UserID)
	})
	return b.reply.Reply(ctx, ev.ReplyToken,
		linebot.NewTextMessage("เราได้แจ้งพนักงานแล้ว จะติดต่อกลับโดยเร็วที่สุดค่ะ 😊"))
}

func (b *Bot) showCart(ctx context.Context, ev *linebot.Event, _ string) error {
	cart, err := b.carts.Snapshot(ctx, ev.Source.UserID)
	if err != nil {
		return fmt.Errorf("cart snapshot: %w", err)
	}
	return b.reply.Reply(ctx, ev.ReplyToken, cartFlex(cart))
}

func (b *Bot) showBill(ctx context.Context, ev *linebot.Event, _ string) error {
	cart, err := b.carts.Snapshot(ctx, ev.Source.UserID)
	if err != nil {
		return fmt.Errorf("cart snapshot: %w", err)
	}
	orderID := cart.LastOrderID
	if orderID == "" {
		orderID = "N/A"
	}
	return b.reply.Reply(ctx, ev.ReplyToken, receiptFlex(orderID, cart.Lines, cart.Total()))
}

// showCategoryMenu looks the full message text up as the category,
// the same label the category buttons send. Fetch failures degrade to
// the "no items" reply.
func (b *Bot) showCategoryMenu(ctx context.Context, ev *linebot.Event, text string) error {
	items, err := b.catalog.ItemsByCategory(ctx, text)
	if err != nil {
		log.Printf("menu lookup category=%q: %v", text, err)
		items = nil
	}
	return b.reply.Reply(ctx, ev.ReplyToken, menuFlex(items))
}
