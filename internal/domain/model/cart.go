package model

import (
	"github.com/shopspring/decimal"
)

// CartItem 購物車內的單一品項
// ProductID 在同一台購物車內唯一，Quantity 永遠 >= 1
type CartItem struct {
	ProductID string          `json:"product_id"`
	Title     string          `json:"title"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart 購物車快照
// Items 保持插入順序，渲染才會穩定
type Cart struct {
	CartID string     `json:"cart_id"`
	Items  []CartItem `json:"items"`
}

// Total 計算總金額，空車回傳 0
func (c *Cart) Total() decimal.Decimal {
	total := decimal.NewFromInt(0)
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
