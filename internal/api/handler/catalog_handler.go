package handler

import (
	"errors"
	"net/http"

	"github.com/219WD/jamrock-front-sub001/internal/api"
	"github.com/219WD/jamrock-front-sub001/internal/apperr"
	"github.com/219WD/jamrock-front-sub001/internal/service"
)

type CatalogHandler struct {
	catalogService service.ICatalogService
}

func NewCatalogHandler(catalogService service.ICatalogService) *CatalogHandler {
	if catalogService == nil {
		panic("catalogService cannot be nil")
	}
	return &CatalogHandler{catalogService: catalogService}
}

// @Summary featured products
// @Tags catalog
// @Produce json
// @Success 200 {object} api.Response{data=[]model.Product} "success"
// @Failure 502 {object} api.ResponseError "catalog service error"
// @Router /products/featured [get]
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.Featured(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	api.SuccessJSON(w, products)
}

// @Summary all products
// @Tags catalog
// @Produce json
// @Success 200 {object} api.Response{data=[]model.Product} "success"
// @Failure 502 {object} api.ResponseError "catalog service error"
// @Router /products [get]
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.Products(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	api.SuccessJSON(w, products)
}

func writeCatalogError(w http.ResponseWriter, err error) {
	var svcErr *apperr.ServiceError
	if errors.As(err, &svcErr) {
		api.ErrorJSON(w, http.StatusBadGateway, svcErr.Error())
		return
	}
	api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
}
