package dto

import (
	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
)

type AddCartItemDTO struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

type UpdateQuantityDTO struct {
	Delta int `json:"delta"`
}

// CartDTO 購物車目前的完整狀態
// Total 用字串輸出，decimal 不經過 float
type CartDTO struct {
	Items []model.CartItem `json:"items"`
	Total string           `json:"total"`
}
