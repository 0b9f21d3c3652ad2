package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/line/line-bot-sdk-go/v7/linebot"

	"line-restaurant/models"
	"line-restaurant/services"
)

// Catalog resolves a category label to its orderable items.
type Catalog interface {
	ItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
}

// Replier sends reply messages for a webhook event.
type Replier interface {
	Reply(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error
}

type sdkReplier struct {
	client *linebot.Client
}

func (r sdkReplier) Reply(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error {
	_, err := r.client.ReplyMessage(replyToken, messages...).WithContext(ctx).Do()
	return err
}

type Bot struct {
	client  *linebot.Client
	reply   Replier
	carts   services.CartStore
	orders  *services.OrderService
	catalog Catalog
	notify  services.Notifier
	routes  []textRoute
}

func New(client *linebot.Client, carts services.CartStore, orders *services.OrderService, catalog Catalog, notify services.Notifier) *Bot {
	b := &Bot{
		client:  client,
		reply:   sdkReplier{client: client},
		carts:   carts,
		orders:  orders,
		catalog: catalog,
		notify:  notify,
	}
	b.routes = b.textRoutes()
	return b
}

func (b *Bot) Routes(r *mux.Router) {
	r.HandleFunc("/webhook", b.handleWebhook).Methods(http.MethodPost)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
}

// handleWebhook verifies the signature and dispatches the batch.
// Events are isolated: a failing event is logged and does not affect
// its siblings or the response status.
func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	events, err := b.client.ParseRequest(r)
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	ctx := r.Context()
	for _, ev := range events {
		if err := b.handleEvent(ctx, ev); err != nil {
			log.Printf("handle event type=%s: %v", ev.Type, err)
		}
	}
	w.WriteHeader(http.StatusOK)
}

func (b *Bot) handleEvent(ctx context.Context, ev *linebot.Event) error {
	if ev.Source == nil || ev.Source.UserID == "" {
		return nil
	}

	switch ev.Type {
	case linebot.EventTypeMessage:
		if m, ok := ev.Message.(*linebot.TextMessage); ok {
			return b.handleText(ctx, ev, m.Text)
		}
	case linebot.EventTypePostback:
		return b.handlePostback(ctx, ev)
	case linebot.EventTypeFollow:
		return b.reply.Reply(ctx, ev.ReplyToken, welcomeFlex())
	}
	// Unrecognized event types resolve to nothing.
	return nil
}

func (b *Bot) handleText(ctx context.Context, ev *linebot.Event, raw string) error {
	text := strings.ToLower(strings.TrimSpace(raw))
	for _, route := range b.routes {
		if route.match(text) {
			return route.handle(ctx, ev, text)
		}
	}
	return b.reply.Reply(ctx, ev.ReplyToken,
		linebot.NewTextMessage("กรุณาเลือกเมนูจาก Rich Menu ด้านล่างค่ะ 😊"))
}

func (b *Bot) handlePostback(ctx context.Context, ev *linebot.Event) error {
	values, err := url.ParseQuery(ev.Postback.Data)
	if err != nil {
		// Malformed postback data is a no-op, not an error.
		return nil
	}
	userID := ev.Source.UserID
	item := values.Get("item")

	switch values.Get("action") {
	case "add", "increase":
		err := b.carts.Update(ctx, userID, func(c *services.Cart) error {
			c.Add(item, services.NameOf(item), services.PriceOf(item))
			return nil
		})
		if err != nil {
			return err
		}
		return b.reply.Reply(ctx, ev.ReplyToken,
			linebot.NewTextMessage(fmt.Sprintf("เพิ่ม %s แล้วค่ะ ✅", services.NameOf(item))))

	case "remove", "decrease":
		err := b.carts.Update(ctx, userID, func(c *services.Cart) error {
			c.Remove(item)
			return nil
		})
		if err != nil {
			return err
		}
		return b.reply.Reply(ctx, ev.ReplyToken,
			linebot.NewTextMessage(fmt.Sprintf("ลด %s แล้วค่ะ ✅", services.NameOf(item))))

	case "confirm_order":
		confirmed, err := b.orders.Confirm(ctx, userID)
		if errors.Is(err, services.ErrEmptyCart) {
			return b.reply.Reply(ctx, ev.ReplyToken, emptyCartMessage())
		}
		if err != nil {
			return err
		}
		return b.reply.Reply(ctx, ev.ReplyToken,
			linebot.NewTextMessage("ยืนยันคำสั่งซื้อเรียบร้อยแล้วค่ะ ✅\nกำลังส่งไปยังห้องครัว..."),
			receiptFlex(confirmed.OrderID, confirmed.Lines, confirmed.Total))
	}

	// Unknown actions are ignored.
	return nil
}
