package bot

import (
	"fmt"
	"net/url"
	"time"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"line-restaurant/models"
	"line-restaurant/services"
)

// Flex builders mirroring the shop's message layouts. Pure view code:
// no state, no side effects.

const (
	accentColor    = "#FF6B6B"
	secondaryColor = "#4ECDC4"
	mutedColor     = "#666666"
	faintColor     = "#999999"
	panelColor     = "#F5F5F5"
)

func flexInt(n int) *int {
	return &n
}

func emptyCartMessage() linebot.SendingMessage {
	return linebot.NewTextMessage("ตะกร้าของคุณยังว่างเปล่าค่ะ 🛒\nกรุณาเลือกเมนูก่อนนะคะ")
}

func welcomeFlex() linebot.SendingMessage {
	return linebot.NewFlexMessage("ยินดีต้อนรับสู่ร้านอาหารของเรา!", &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Size: linebot.FlexBubbleSizeTypeMega,
		Hero: &linebot.ImageComponent{
			Type:        linebot.FlexComponentTypeImage,
			URL:         "https://via.placeholder.com/800x400/FFE5E5/FF6B6B?text=Welcome",
			Size:        linebot.FlexImageSizeTypeFull,
			AspectRatio: linebot.FlexImageAspectRatioType("2:1"),
			AspectMode:  linebot.FlexImageAspectModeTypeCover,
		},
		Body: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "🍜 ยินดีต้อนรับ",
					Size:   linebot.FlexTextSizeTypeXl,
					Weight: linebot.FlexTextWeightTypeBold,
					Color:  accentColor,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "ร้านอาหารน่ารัก",
					Size:   linebot.FlexTextSizeTypeXxl,
					Weight: linebot.FlexTextWeightTypeBold,
					Margin: linebot.FlexComponentMarginTypeSm,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "พร้อมเสิร์ฟความอร่อยทุกวัน",
					Size:   linebot.FlexTextSizeTypeMd,
					Color:  mutedColor,
					Wrap:   true,
					Margin: linebot.FlexComponentMarginTypeLg,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "เปิดทุกวัน 10.00 - 20.00 น.",
					Size:   linebot.FlexTextSizeTypeSm,
					Color:  faintColor,
					Margin: linebot.FlexComponentMarginTypeSm,
				},
				&linebot.SeparatorComponent{
					Type:   linebot.FlexComponentTypeSeparator,
					Margin: linebot.FlexComponentMarginTypeXl,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "✨ เริ่มต้นสั่งอาหารได้เลย!",
					Size:   linebot.FlexTextSizeTypeMd,
					Color:  accentColor,
					Weight: linebot.FlexTextWeightTypeBold,
					Align:  linebot.FlexComponentAlignTypeCenter,
					Margin: linebot.FlexComponentMarginTypeXl,
				},
			},
		},
		Footer: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.ButtonComponent{
					Type:   linebot.FlexComponentTypeButton,
					Action: &linebot.MessageAction{Label: "🍱 สั่งอาหาร", Text: "สั่งอาหาร"},
					Style:  linebot.FlexButtonStyleTypePrimary,
					Color:  accentColor,
					Height: linebot.FlexButtonHeightTypeMd,
				},
				&linebot.ButtonComponent{
					Type:   linebot.FlexComponentTypeButton,
					Action: &linebot.MessageAction{Label: "🎉 ดูโปรโมชั่น", Text: "โปรโมชั่น"},
					Style:  linebot.FlexButtonStyleTypeSecondary,
					Height: linebot.FlexButtonHeightTypeSm,
					Margin: linebot.FlexComponentMarginTypeSm,
				},
			},
		},
		Styles: &linebot.BubbleStyle{
			Footer: &linebot.BlockStyle{BackgroundColor: panelColor},
		},
	})
}

// categoryButton is one cell of the category grid: an emoji button
// over its label. Tapping sends the label as a message, which the
// category route then looks up.
func categoryButton(emoji, label string) *linebot.BoxComponent {
	return &linebot.BoxComponent{
		Type:   linebot.FlexComponentTypeBox,
		Layout: linebot.FlexBoxLayoutTypeVertical,
		Flex:   flexInt(1),
		Margin: linebot.FlexComponentMarginTypeSm,
		Contents: []linebot.FlexComponent{
			&linebot.ButtonComponent{
				Type:   linebot.FlexComponentTypeButton,
				Action: &linebot.MessageAction{Label: emoji, Text: label},
				Style:  linebot.FlexButtonStyleTypeSecondary,
			},
			&linebot.TextComponent{
				Type:   linebot.FlexComponentTypeText,
				Text:   label,
				Size:   linebot.FlexTextSizeTypeSm,
				Color:  mutedColor,
				Align:  linebot.FlexComponentAlignTypeCenter,
				Margin: linebot.FlexComponentMarginTypeSm,
			},
		},
	}
}

func categoryRow(margin linebot.FlexComponentMarginType, cells ...*linebot.BoxComponent) *linebot.BoxComponent {
	contents := make([]linebot.FlexComponent, len(cells))
	for i, c := range cells {
		contents[i] = c
	}
	return &linebot.BoxComponent{
		Type:     linebot.FlexComponentTypeBox,
		Layout:   linebot.FlexBoxLayoutTypeHorizontal,
		Spacing:  linebot.FlexComponentSpacingTypeMd,
		Margin:   margin,
		Contents: contents,
	}
}

func categoryFlex() linebot.SendingMessage {
	return linebot.NewFlexMessage("เลือกหมวดหมู่อาหาร", &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Size: linebot.FlexBubbleSizeTypeMega,
		Header: &linebot.BoxComponent{
			Type:            linebot.FlexComponentTypeBox,
			Layout:          linebot.FlexBoxLayoutTypeVertical,
			BackgroundColor: panelColor,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "🍽️ เลือกหมวดหมู่",
					Size:   linebot.FlexTextSizeTypeXl,
					Weight: linebot.FlexTextWeightTypeBold,
					Align:  linebot.FlexComponentAlignTypeCenter,
				},
			},
		},
		Body: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				categoryRow(linebot.FlexComponentMarginTypeNone,
					categoryButton("🍜", "อาหารจานเดียว"),
					categoryButton("🥘", "กับข้าว"),
				),
				categoryRow(linebot.FlexComponentMarginTypeLg,
					categoryButton("🥗", "สลัด/ยำ"),
					categoryButton("🍲", "ต้ม/แกง"),
				),
				categoryRow(linebot.FlexComponentMarginTypeLg,
					categoryButton("🥤", "เครื่องดื่ม"),
					categoryButton("🍰", "ของหวาน"),
				),
			},
		},
		Footer: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.ButtonComponent{
					Type:   linebot.FlexComponentTypeButton,
					Action: &linebot.MessageAction{Label: "🛒 ดูตะกร้า", Text: "ดูตะกร้า"},
					Style:  linebot.FlexButtonStyleTypePrimary,
					Color:  accentColor,
				},
			},
		},
	})
}

func promotionFlex() linebot.SendingMessage {
	buyOneGetOne := &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Size: linebot.FlexBubbleSizeTypeKilo,
		Hero: &linebot.ImageComponent{
			Type:        linebot.FlexComponentTypeImage,
			URL:         "https://via.placeholder.com/400x200/FFE5E5/FF6B6B?text=Buy+1+Get+1",
			Size:        linebot.FlexImageSizeTypeFull,
			AspectRatio: linebot.FlexImageAspectRatioType("2:1"),
			AspectMode:  linebot.FlexImageAspectModeTypeCover,
		},
		Body: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "🎉 ซื้อ 1 แถม 1",
					Size:   linebot.FlexTextSizeTypeXl,
					Weight: linebot.FlexTextWeightTypeBold,
					Color:  accentColor,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "ผัดไทย ซื้อ 1 แถม 1",
					Size:   linebot.FlexTextSizeTypeMd,
					Margin: linebot.FlexComponentMarginTypeSm,
					Wrap:   true,
				},
				&linebot.BoxComponent{
					Type:   linebot.FlexComponentTypeBox,
					Layout: linebot.FlexBoxLayoutTypeHorizontal,
					Margin: linebot.FlexComponentMarginTypeMd,
					Contents: []linebot.FlexComponent{
						&linebot.TextComponent{
							Type:       linebot.FlexComponentTypeText,
							Text:       "ปกติ ฿120",
							Size:       linebot.FlexTextSizeTypeSm,
							Color:      faintColor,
							Decoration: linebot.FlexTextDecorationTypeLineThrough,
						},
						&linebot.TextComponent{
							Type:   linebot.FlexComponentTypeText,
							Text:   "฿60",
							Size:   linebot.FlexTextSizeTypeXl,
							Color:  accentColor,
							Weight: linebot.FlexTextWeightTypeBold,
							Margin: linebot.FlexComponentMarginTypeMd,
						},
					},
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "⏰ วันนี้เท่านั้น!",
					Size:   linebot.FlexTextSizeTypeSm,
					Color:  mutedColor,
					Margin: linebot.FlexComponentMarginTypeMd,
				},
			},
		},
		Footer: promoFooter(accentColor),
	}

	tomYumDiscount := &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Size: linebot.FlexBubbleSizeTypeKilo,
		Hero: &linebot.ImageComponent{
			Type:        linebot.FlexComponentTypeImage,
			URL:         "https://via.placeholder.com/400x200/E5F3FF/4ECDC4?text=20%25+OFF",
			Size:        linebot.FlexImageSizeTypeFull,
			AspectRatio: linebot.FlexImageAspectRatioType("2:1"),
			AspectMode:  linebot.FlexImageAspectModeTypeCover,
		},
		Body: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "💙 ลด 20%",
					Size:   linebot.FlexTextSizeTypeXl,
					Weight: linebot.FlexTextWeightTypeBold,
					Color:  secondaryColor,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "เมนูต้มยำ ทุกชนิด",
					Size:   linebot.FlexTextSizeTypeMd,
					Margin: linebot.FlexComponentMarginTypeSm,
					Wrap:   true,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "เมื่อสั่ง 2 ที่ขึ้นไป",
					Size:   linebot.FlexTextSizeTypeSm,
					Color:  mutedColor,
					Margin: linebot.FlexComponentMarginTypeSm,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "📅 1-7 กรกฎาคม 2568",
					Size:   linebot.FlexTextSizeTypeSm,
					Color:  mutedColor,
					Margin: linebot.FlexComponentMarginTypeMd,
				},
			},
		},
		Footer: promoFooter(secondaryColor),
	}

	return linebot.NewFlexMessage("โปรโมชั่นพิเศษ", &linebot.CarouselContainer{
		Type:     linebot.FlexContainerTypeCarousel,
		Contents: []*linebot.BubbleContainer{buyOneGetOne, tomYumDiscount},
	})
}

func promoFooter(color string) *linebot.BoxComponent {
	return &linebot.BoxComponent{
		Type:   linebot.FlexComponentTypeBox,
		Layout: linebot.FlexBoxLayoutTypeVertical,
		Contents: []linebot.FlexComponent{
			&linebot.ButtonComponent{
				Type:   linebot.FlexComponentTypeButton,
				Action: &linebot.MessageAction{Label: "สั่งเลย!", Text: "สั่งอาหาร"},
				Style:  linebot.FlexButtonStyleTypePrimary,
				Color:  color,
			},
		},
	}
}

func recommendedFlex() linebot.SendingMessage {
	return linebot.NewFlexMessage("เมนูแนะนำ", &linebot.CarouselContainer{
		Type: linebot.FlexContainerTypeCarousel,
		Contents: []*linebot.BubbleContainer{
			recommendedBubble(
				"⭐ ผัดไทยกุ้งสด", "Best Seller!", 60, "padthai", accentColor,
				"https://via.placeholder.com/300x200/FFE5CC/FF6B6B?text=Best+Seller",
			),
			recommendedBubble(
				"👨‍🍳 ต้มยำกุ้งน้ำข้น", "Chef's Pick!", 120, "tomyum", secondaryColor,
				"https://via.placeholder.com/300x200/E5F3FF/4ECDC4?text=Chef+Pick",
			),
		},
	})
}

func recommendedBubble(title, tagline string, price int64, itemID, color, imageURL string) *linebot.BubbleContainer {
	return &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Size: linebot.FlexBubbleSizeTypeMicro,
		Hero: &linebot.ImageComponent{
			Type:        linebot.FlexComponentTypeImage,
			URL:         imageURL,
			Size:        linebot.FlexImageSizeTypeFull,
			AspectRatio: linebot.FlexImageAspectRatioType("3:2"),
			AspectMode:  linebot.FlexImageAspectModeTypeCover,
		},
		Body: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   title,
					Weight: linebot.FlexTextWeightTypeBold,
					Size:   linebot.FlexTextSizeTypeMd,
					Wrap:   true,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   tagline,
					Size:   linebot.FlexTextSizeTypeXs,
					Color:  color,
					Margin: linebot.FlexComponentMarginTypeXs,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   fmt.Sprintf("฿%d", price),
					Size:   linebot.FlexTextSizeTypeLg,
					Color:  color,
					Weight: linebot.FlexTextWeightTypeBold,
					Margin: linebot.FlexComponentMarginTypeSm,
				},
			},
		},
		Footer: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.ButtonComponent{
					Type:   linebot.FlexComponentTypeButton,
					Action: &linebot.PostbackAction{Label: "สั่งเลย", Data: "action=add&item=" + itemID},
					Style:  linebot.FlexButtonStyleTypePrimary,
					Color:  color,
					Height: linebot.FlexButtonHeightTypeSm,
				},
			},
		},
	}
}

func cartFlex(cart services.Cart) linebot.SendingMessage {
	if cart.Empty() {
		return emptyCartMessage()
	}

	var rows []linebot.FlexComponent
	for i, line := range cart.Lines {
		if i > 0 {
			rows = append(rows, &linebot.SeparatorComponent{
				Type:   linebot.FlexComponentTypeSeparator,
				Margin: linebot.FlexComponentMarginTypeMd,
			})
		}
		rows = append(rows, cartLineRow(line))
	}
	rows = append(rows,
		&linebot.SeparatorComponent{
			Type:   linebot.FlexComponentTypeSeparator,
			Margin: linebot.FlexComponentMarginTypeLg,
		},
		totalRow(cart.Total()),
	)

	return linebot.NewFlexMessage("ตะกร้าสินค้า", &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Size: linebot.FlexBubbleSizeTypeMega,
		Header: &linebot.BoxComponent{
			Type:            linebot.FlexComponentTypeBox,
			Layout:          linebot.FlexBoxLayoutTypeVertical,
			BackgroundColor: panelColor,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "🛒 ตะกร้าของคุณ",
					Size:   linebot.FlexTextSizeTypeXl,
					Weight: linebot.FlexTextWeightTypeBold,
				},
			},
		},
		Body: &linebot.BoxComponent{
			Type:     linebot.FlexComponentTypeBox,
			Layout:   linebot.FlexBoxLayoutTypeVertical,
			Contents: rows,
		},
		Footer: &linebot.BoxComponent{
			Type:    linebot.FlexComponentTypeBox,
			Layout:  linebot.FlexBoxLayoutTypeVertical,
			Spacing: linebot.FlexComponentSpacingTypeSm,
			Contents: []linebot.FlexComponent{
				&linebot.ButtonComponent{
					Type:   linebot.FlexComponentTypeButton,
					Action: &linebot.PostbackAction{Label: "✅ ยืนยันคำสั่งซื้อ", Data: "action=confirm_order"},
					Style:  linebot.FlexButtonStyleTypePrimary,
					Color:  accentColor,
					Height: linebot.FlexButtonHeightTypeMd,
				},
				&linebot.ButtonComponent{
					Type:   linebot.FlexComponentTypeButton,
					Action: &linebot.MessageAction{Label: "🍽️ เพิ่มเมนูอื่น", Text: "สั่งอาหาร"},
					Style:  linebot.FlexButtonStyleTypeSecondary,
					Height: linebot.FlexButtonHeightTypeSm,
					Margin: linebot.FlexComponentMarginTypeSm,
				},
			},
		},
	})
}

// cartLineRow renders one cart line: name and unit price, -/qty/+
// stepper, line total.
func cartLineRow(line services.CartLine) *linebot.BoxComponent {
	return &linebot.BoxComponent{
		Type:    linebot.FlexComponentTypeBox,
		Layout:  linebot.FlexBoxLayoutTypeHorizontal,
		Spacing: linebot.FlexComponentSpacingTypeMd,
		Contents: []linebot.FlexComponent{
			&linebot.BoxComponent{
				Type:   linebot.FlexComponentTypeBox,
				Layout: linebot.FlexBoxLayoutTypeVertical,
				Flex:   flexInt(3),
				Contents: []linebot.FlexComponent{
					&linebot.TextComponent{
						Type:   linebot.FlexComponentTypeText,
						Text:   line.Name,
						Size:   linebot.FlexTextSizeTypeMd,
						Weight: linebot.FlexTextWeightTypeBold,
					},
					&linebot.TextComponent{
						Type:  linebot.FlexComponentTypeText,
						Text:  fmt.Sprintf("฿%d", line.UnitPrice),
						Size:  linebot.FlexTextSizeTypeSm,
						Color: mutedColor,
					},
				},
			},
			&linebot.BoxComponent{
				Type:    linebot.FlexComponentTypeBox,
				Layout:  linebot.FlexBoxLayoutTypeHorizontal,
				Flex:    flexInt(2),
				Spacing: linebot.FlexComponentSpacingTypeXs,
				Contents: []linebot.FlexComponent{
					&linebot.ButtonComponent{
						Type:   linebot.FlexComponentTypeButton,
						Action: &linebot.PostbackAction{Label: "-", Data: "action=decrease&item=" + line.ItemID},
						Style:  linebot.FlexButtonStyleTypeSecondary,
						Height: linebot.FlexButtonHeightTypeSm,
					},
					&linebot.TextComponent{
						Type:    linebot.FlexComponentTypeText,
						Text:    fmt.Sprintf("%d", line.Qty),
						Align:   linebot.FlexComponentAlignTypeCenter,
						Gravity: linebot.FlexComponentGravityTypeCenter,
						Size:    linebot.FlexTextSizeTypeMd,
						Margin:  linebot.FlexComponentMarginTypeSm,
					},
					&linebot.ButtonComponent{
						Type:   linebot.FlexComponentTypeButton,
						Action: &linebot.PostbackAction{Label: "+", Data: "action=increase&item=" + line.ItemID},
						Style:  linebot.FlexButtonStyleTypeSecondary,
						Height: linebot.FlexButtonHeightTypeSm,
					},
				},
			},
			&linebot.TextComponent{
				Type:    linebot.FlexComponentTypeText,
				Text:    fmt.Sprintf("฿%d", line.UnitPrice*int64(line.Qty)),
				Size:    linebot.FlexTextSizeTypeMd,
				Weight:  linebot.FlexTextWeightTypeBold,
				Color:   accentColor,
				Align:   linebot.FlexComponentAlignTypeEnd,
				Gravity: linebot.FlexComponentGravityTypeCenter,
				Flex:    flexInt(1),
			},
		},
	}
}

func totalRow(total int64) *linebot.BoxComponent {
	return &linebot.BoxComponent{
		Type:   linebot.FlexComponentTypeBox,
		Layout: linebot.FlexBoxLayoutTypeHorizontal,
		Margin: linebot.FlexComponentMarginTypeLg,
		Contents: []linebot.FlexComponent{
			&linebot.TextComponent{
				Type:   linebot.FlexComponentTypeText,
				Text:   "ยอดรวม",
				Size:   linebot.FlexTextSizeTypeLg,
				Weight: linebot.FlexTextWeightTypeBold,
				Flex:   flexInt(1),
			},
			&linebot.TextComponent{
				Type:   linebot.FlexComponentTypeText,
				Text:   fmt.Sprintf("฿%d", total),
				Size:   linebot.FlexTextSizeTypeXl,
				Weight: linebot.FlexTextWeightTypeBold,
				Color:  accentColor,
				Align:  linebot.FlexComponentAlignTypeEnd,
			},
		},
	}
}

// receiptFlex renders the bill for a confirmed order (or the current
// cart when re-checking the bill). The header QR encodes the order id
// for pickup.
func receiptFlex(orderID string, lines []services.CartLine, total int64) linebot.SendingMessage {
	contents := []linebot.FlexComponent{
		billInfoRow("เลขที่บิล:", orderID),
		billInfoRow("วันที่:", time.Now().UTC().Format("02/01/2006 15:04")),
		&linebot.SeparatorComponent{
			Type:   linebot.FlexComponentTypeSeparator,
			Margin: linebot.FlexComponentMarginTypeLg,
		},
		&linebot.TextComponent{
			Type:   linebot.FlexComponentTypeText,
			Text:   "รายการอาหาร",
			Size:   linebot.FlexTextSizeTypeMd,
			Weight: linebot.FlexTextWeightTypeBold,
			Margin: linebot.FlexComponentMarginTypeLg,
		},
	}
	for _, line := range lines {
		contents = append(contents, &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeHorizontal,
			Margin: linebot.FlexComponentMarginTypeSm,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type: linebot.FlexComponentTypeText,
					Text: fmt.Sprintf("%s x%d", line.Name, line.Qty),
					Size: linebot.FlexTextSizeTypeSm,
					Flex: flexInt(3),
				},
				&linebot.TextComponent{
					Type:  linebot.FlexComponentTypeText,
					Text:  fmt.Sprintf("฿%d", line.UnitPrice*int64(line.Qty)),
					Size:  linebot.FlexTextSizeTypeSm,
					Align: linebot.FlexComponentAlignTypeEnd,
					Flex:  flexInt(1),
				},
			},
		})
	}
	contents = append(contents,
		&linebot.SeparatorComponent{
			Type:   linebot.FlexComponentTypeSeparator,
			Margin: linebot.FlexComponentMarginTypeLg,
		},
		totalRow(total),
		&linebot.TextComponent{
			Type:   linebot.FlexComponentTypeText,
			Text:   "🙏 ขอบคุณที่ใช้บริการ",
			Size:   linebot.FlexTextSizeTypeSm,
			Color:  mutedColor,
			Align:  linebot.FlexComponentAlignTypeCenter,
			Margin: linebot.FlexComponentMarginTypeXl,
		},
	)

	return linebot.NewFlexMessage("บิลค่าอาหาร", &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Size: linebot.FlexBubbleSizeTypeMega,
		Header: &linebot.BoxComponent{
			Type:            linebot.FlexComponentTypeBox,
			Layout:          linebot.FlexBoxLayoutTypeVertical,
			BackgroundColor: panelColor,
			Contents: []linebot.FlexComponent{
				&linebot.ImageComponent{
					Type:  linebot.FlexComponentTypeImage,
					URL:   "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=" + url.QueryEscape(orderID),
					Size:  linebot.FlexImageSizeType("150px"),
					Align: linebot.FlexComponentAlignTypeCenter,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "ร้านอาหารน่ารัก",
					Size:   linebot.FlexTextSizeTypeXl,
					Weight: linebot.FlexTextWeightTypeBold,
					Align:  linebot.FlexComponentAlignTypeCenter,
					Margin: linebot.FlexComponentMarginTypeMd,
				},
				&linebot.TextComponent{
					Type:  linebot.FlexComponentTypeText,
					Text:  "ใบเสร็จรับเงิน",
					Size:  linebot.FlexTextSizeTypeMd,
					Color: mutedColor,
					Align: linebot.FlexComponentAlignTypeCenter,
				},
			},
		},
		Body: &linebot.BoxComponent{
			Type:     linebot.FlexComponentTypeBox,
			Layout:   linebot.FlexBoxLayoutTypeVertical,
			Contents: contents,
		},
		Footer: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.ButtonComponent{
					Type:   linebot.FlexComponentTypeButton,
					Action: &linebot.URIAction{Label: "💳 ชำระเงิน", URI: "https://payment.example.com/" + orderID},
					Style:  linebot.FlexButtonStyleTypePrimary,
					Color:  accentColor,
				},
			},
		},
	})
}

func billInfoRow(label, value string) *linebot.BoxComponent {
	return &linebot.BoxComponent{
		Type:   linebot.FlexComponentTypeBox,
		Layout: linebot.FlexBoxLayoutTypeHorizontal,
		Contents: []linebot.FlexComponent{
			&linebot.TextComponent{
				Type:  linebot.FlexComponentTypeText,
				Text:  label,
				Size:  linebot.FlexTextSizeTypeSm,
				Color: mutedColor,
				Flex:  flexInt(2),
			},
			&linebot.TextComponent{
				Type:  linebot.FlexComponentTypeText,
				Text:  value,
				Size:  linebot.FlexTextSizeTypeSm,
				Align: linebot.FlexComponentAlignTypeEnd,
				Flex:  flexInt(3),
			},
		},
	}
}

func menuFlex(items []models.MenuItem) linebot.SendingMessage {
	if len(items) == 0 {
		return linebot.NewTextMessage("ขออภัยค่ะ ยังไม่มีเมนูในหมวดนี้")
	}

	bubbles := make([]*linebot.BubbleContainer, 0, len(items))
	for _, item := range items {
		imageURL := item.ImageURL
		if imageURL == "" {
			imageURL = "https://via.placeholder.com/300x200/FFE5CC/FF6B6B?text=" + url.QueryEscape(item.Name)
		}
		bubbles = append(bubbles, &linebot.BubbleContainer{
			Type: linebot.FlexContainerTypeBubble,
			Size: linebot.FlexBubbleSizeTypeMicro,
			Hero: &linebot.ImageComponent{
				Type:        linebot.FlexComponentTypeImage,
				URL:         imageURL,
				Size:        linebot.FlexImageSizeTypeFull,
				AspectRatio: linebot.FlexImageAspectRatioType("3:2"),
				AspectMode:  linebot.FlexImageAspectModeTypeCover,
			},
			Body: &linebot.BoxComponent{
				Type:   linebot.FlexComponentTypeBox,
				Layout: linebot.FlexBoxLayoutTypeVertical,
				Contents: []linebot.FlexComponent{
					&linebot.TextComponent{
						Type:   linebot.FlexComponentTypeText,
						Text:   item.Name,
						Weight: linebot.FlexTextWeightTypeBold,
						Size:   linebot.FlexTextSizeTypeMd,
						Wrap:   true,
					},
					&linebot.TextComponent{
						Type:   linebot.FlexComponentTypeText,
						Text:   fmt.Sprintf("฿%d", item.Price),
						Size:   linebot.FlexTextSizeTypeLg,
						Color:  accentColor,
						Weight: linebot.FlexTextWeightTypeBold,
						Margin: linebot.FlexComponentMarginTypeSm,
					},
				},
			},
			Footer: &linebot.BoxComponent{
				Type:    linebot.FlexComponentTypeBox,
				Layout:  linebot.FlexBoxLayoutTypeHorizontal,
				Spacing: linebot.FlexComponentSpacingTypeXs,
				Contents: []linebot.FlexComponent{
					&linebot.ButtonComponent{
						Type:   linebot.FlexComponentTypeButton,
						Action: &linebot.PostbackAction{Label: "➖", Data: "action=remove&item=" + item.ID},
						Flex:   flexInt(1),
						Height: linebot.FlexButtonHeightTypeSm,
					},
					&linebot.TextComponent{
						Type:    linebot.FlexComponentTypeText,
						Text:    "0",
						Align:   linebot.FlexComponentAlignTypeCenter,
						Gravity: linebot.FlexComponentGravityTypeCenter,
						Flex:    flexInt(1),
					},
					&linebot.ButtonComponent{
						Type:   linebot.FlexComponentTypeButton,
						Action: &linebot.PostbackAction{Label: "➕", Data: "action=add&item=" + item.ID},
						Flex:   flexInt(1),
						Height: linebot.FlexButtonHeightTypeSm,
					},
				},
			},
		})
	}

	return linebot.NewFlexMessage("เมนูอาหาร", &linebot.CarouselContainer{
		Type:     linebot.FlexContainerTypeCarousel,
		Contents: bubbles,
	})
}
