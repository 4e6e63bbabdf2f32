package service

import (
	"context"
	"errors"
	"sync"

	"github.com/219WD/jamrock-front-sub001/internal/apperr"
	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
	"github.com/219WD/jamrock-front-sub001/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ICartService 購物車狀態的唯一擁有者
// 記憶體內的品項列表為準，每次變動整份覆寫快照到快取
// 持久層故障一律降級處理: 記 log、不中斷、不回報使用者
type ICartService interface {
	// Add 加入商品
	// 同一商品已存在時合併數量，否則附加新品項，插入順序保留
	Add(ctx context.Context, product model.Product, quantity int)
	// Remove 移除指定商品，不存在時為 no-op
	Remove(ctx context.Context, productID string)
	// UpdateQuantity 對指定品項數量加上 delta，下限夾在 1
	// 減到 0 以下不會變成移除，商品不存在時為 no-op
	UpdateQuantity(ctx context.Context, productID string, delta int)
	// Clear 清空購物車並刪除快照
	Clear(ctx context.Context)
	// Total 回傳 Σ(單價 × 數量)，空車為 0
	Total() decimal.Decimal
	// Items 回傳目前品項的複本，維持插入順序
	Items() []model.CartItem
}

type CartService struct {
	mu     sync.RWMutex
	cartID string
	items  []model.CartItem
	repo   redis_repo.ICartRepo
	logger *zerolog.Logger
}

var _ ICartService = (*CartService)(nil)

// NewCartService 建立購物車並嘗試從快照還原
// 快照不存在或不可讀時退回 initial，不會失敗
func NewCartService(ctx context.Context, cartID string, repo redis_repo.ICartRepo, logger *zerolog.Logger, initial []model.CartItem) *CartService {
	s := &CartService{
		cartID: cartID,
		repo:   repo,
		logger: logger,
	}

	cart, err := repo.Load(ctx, cartID)
	switch {
	case err == nil:
		s.items = cart.Items
	case errors.Is(err, apperr.ErrSnapshotNotFound):
		s.items = append([]model.CartItem(nil), initial...)
	default:
		logger.Warn().
			Str("cart_id", cartID).
			Err(err).
			Msg("cart snapshot unreadable, falling back to initial state")
		s.items = append([]model.CartItem(nil), initial...)
	}
	return s
}

func (s *CartService) Add(ctx context.Context, product model.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ProductID == product.ProductID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, model.CartItem{
			ProductID: product.ProductID,
			Title:     product.Title,
			Image:     product.Image,
			UnitPrice: product.Price,
			Quantity:  quantity,
		})
	}
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *CartService) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *CartService) UpdateQuantity(ctx context.Context, productID string, delta int) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity += delta
			if s.items[i].Quantity < 1 {
				s.items[i].Quantity = 1
			}
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, s.cartID); err != nil {
		s.logger.Warn().
			Str("cart_id", s.cartID).
			Err(err).
			Msg("failed to erase cart snapshot")
	}
}

func (s *CartService) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := model.Cart{CartID: s.cartID, Items: s.items}
	return cart.Total()
}

func (s *CartService) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.CartItem(nil), s.items...)
}

// persist 整份覆寫快照，失敗只記 log
// 記憶體內的狀態已經更新，快取毀損不該讓操作失敗
func (s *CartService) persist(ctx context.Context) {
	s.mu.RLock()
	cart := &model.Cart{
		CartID: s.cartID,
		Items:  append([]model.CartItem(nil), s.items...),
	}
	s.mu.RUnlock()

	if err := s.repo.Save(ctx, cart); err != nil {
		s.logger.Warn().
			Str("cart_id", s.cartID).
			Err(err).
			Msg("failed to persist cart snapshot")
	}
}
