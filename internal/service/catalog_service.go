package service

import (
	"context"

	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
	"github.com/219WD/jamrock-front-sub001/internal/infra/client"
)

// ICatalogService 精選商品列表
type ICatalogService interface {
	// Featured 取回通過精選門檻的商品
	// 型別或數值不合格的 entry 靜默排除
	Featured(ctx context.Context) ([]model.Product, error)
	// Products 取回全部可正規化的商品
	Products(ctx context.Context) ([]model.Product, error)
}

type CatalogService struct {
	catalogClient client.ICatalogClient
}

var _ ICatalogService = (*CatalogService)(nil)

func NewCatalogService(catalogClient client.ICatalogClient) *CatalogService {
	return &CatalogService{catalogClient: catalogClient}
}

func (s *CatalogService) Featured(ctx context.Context) ([]model.Product, error) {
	entries, err := s.catalogClient.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]model.Product, 0, len(entries))
	for _, entry := range entries {
		if !entry.FeaturedEligible() {
			continue
		}
		featured = append(featured, entry.ToProduct())
	}
	return featured, nil
}

func (s *CatalogService) Products(ctx context.Context) ([]model.Product, error) {
	entries, err := s.catalogClient.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(entries))
	for _, entry := range entries {
		products = append(products, entry.ToProduct())
	}
	return products, nil
}
