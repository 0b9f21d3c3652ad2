package services

// Static pricebook for items referenced by postback buttons. Prices
// are whole baht. An unknown id resolves to price 0 and the raw id as
// its name; nothing rejects it.

var itemPrices = map[string]int64{
	"padthai":     60,
	"tomyum":      120,
	"greencurry":  80,
	"somtam":      50,
	"friedrice":   60,
	"papayasalad": 45,
	"icedtea":     25,
	"mangorice":   60,
}

var itemNames = map[string]string{
	"padthai":     "ผัดไทย",
	"tomyum":      "ต้มยำกุ้ง",
	"greencurry":  "แกงเขียวหวาน",
	"somtam":      "ส้มตำ",
	"friedrice":   "ข้าวผัด",
	"papayasalad": "ยำมะระวงใส",
	"icedtea":     "ชาเย็น",
	"mangorice":   "ข้าวเหนียวมะม่วง",
}

func PriceOf(itemID string) int64 {
	return itemPrices[itemID]
}

func NameOf(itemID string) string {
	if name, ok := itemNames[itemID]; ok {
		return name
	}
	return itemID
}
