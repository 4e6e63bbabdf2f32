package model

import (
	"github.com/shopspring/decimal"
)

const featuredMinRating = 3

// Product 正規化後的商品資訊
type Product struct {
	ProductID   string          `json:"product_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"is_active"`
}

// CatalogEntry 目錄服務回傳的原始商品資料
// 外部資料不可信，型別錯誤或缺漏的欄位用指標表示，
// 不合格的 entry 直接略過，不當成錯誤
type CatalogEntry struct {
	ProductID   string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       *float64 `json:"price"`
	Rating      *float64 `json:"rating"`
	Stock       *float64 `json:"stock"`
	IsActive    *bool    `json:"isActive"`
}

// FeaturedEligible 精選商品的篩選條件:
//   - isActive 沒有明確為 false
//   - rating 為數值且 >= 3
//   - stock 為數值且 > 0
func (e CatalogEntry) FeaturedEligible() bool {
	if e.IsActive != nil && !*e.IsActive {
		return false
	}
	if e.Rating == nil || *e.Rating < featuredMinRating {
		return false
	}
	if e.Stock == nil || *e.Stock <= 0 {
		return false
	}
	return true
}

// ToProduct 轉成正規化的 Product，缺漏欄位補零值
func (e CatalogEntry) ToProduct() Product {
	p := Product{
		ProductID:   e.ProductID,
		Title:       e.Title,
		Description: e.Description,
		Image:       e.Image,
		IsActive:    e.IsActive == nil || *e.IsActive,
	}
	if e.Price != nil {
		p.Price = decimal.NewFromFloat(*e.Price)
	}
	if e.Rating != nil {
		p.Rating = *e.Rating
	}
	if e.Stock != nil {
		p.Stock = int(*e.Stock)
	}
	return p
}
