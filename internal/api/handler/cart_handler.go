package handler

import (
	"encoding/json"
	"net/http"

	"github.com/219WD/jamrock-front-sub001/internal/api"
	"github.com/219WD/jamrock-front-sub001/internal/api/dto"
	"github.com/219WD/jamrock-front-sub001/internal/service"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) cartDTO() dto.CartDTO {
	return dto.CartDTO{
		Items: h.cartService.Items(),
		Total: h.cartService.Total().String(),
	}
}

// @Summary get cart
// @Tags cart
// @Produce json
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Router /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	api.SuccessJSON(w, h.cartDTO())
}

// @Summary add product to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.AddCartItemDTO true "product and quantity"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 400 {object} api.ResponseError "bad request"
// @Router /cart/items [post]
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Product.ProductID == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "product id is required")
		return
	}

	h.cartService.Add(r.Context(), req.Product, req.Quantity)
	api.SuccessJSON(w, h.cartDTO())
}

// @Summary remove product from cart
// @Tags cart
// @Produce json
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Router /cart/items/{productID} [delete]
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	h.cartService.Remove(r.Context(), productID)
	api.SuccessJSON(w, h.cartDTO())
}

// @Summary adjust item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param delta body dto.UpdateQuantityDTO true "quantity delta"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 400 {object} api.ResponseError "bad request"
// @Router /cart/items/{productID}/quantity [patch]
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateQuantityDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID := chi.URLParam(r, "productID")
	h.cartService.UpdateQuantity(r.Context(), productID, req.Delta)
	api.SuccessJSON(w, h.cartDTO())
}

// @Summary clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Router /cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cartService.Clear(r.Context())
	api.SuccessJSON(w, h.cartDTO())
}
