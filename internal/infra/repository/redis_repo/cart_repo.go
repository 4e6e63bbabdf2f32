package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/219WD/jamrock-front-sub001/internal/apperr"
	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
	"github.com/219WD/jamrock-front-sub001/internal/infra/cache"
)

// ICartRepo 購物車快照的持久層
// 每次變動整份覆寫，不做增量 diff
type ICartRepo interface {
	// Save 將整台購物車序列化後覆寫快照
	Save(ctx context.Context, cart *model.Cart) error
	// Load 讀取快照並還原購物車
	//
	// 錯誤:
	//   - apperr.ErrSnapshotNotFound: 快照不存在
	//   - *apperr.PersistenceError: 快取不可用或內容毀損
	Load(ctx context.Context, cartID string) (*model.Cart, error)
	// Delete 刪除快照，清空購物車時使用
	Delete(ctx context.Context, cartID string) error
}

type CartRepo struct {
	cartCache cache.Cache
}

func NewCartRepo(cartCache cache.Cache) *CartRepo {
	return &CartRepo{cartCache: cartCache}
}

var _ ICartRepo = (*CartRepo)(nil)

func generateCartSnapshotKey(cartID string) string {
	return fmt.Sprintf("cart:%s:snapshot", cartID)
}

func (r *CartRepo) Save(ctx context.Context, cart *model.Cart) error {
	data, err := json.Marshal(cart.Items)
	if err != nil {
		return apperr.NewPersistenceError("save", err)
	}

	// 快照不設 TTL，購物車的生命週期由呼叫端控制
	if err := r.cartCache.Set(ctx, generateCartSnapshotKey(cart.CartID), string(data), 0); err != nil {
		return apperr.NewPersistenceError("save", err)
	}
	return nil
}

func (r *CartRepo) Load(ctx context.Context, cartID string) (*model.Cart, error) {
	data, err := r.cartCache.Get(ctx, generateCartSnapshotKey(cartID))
	if errors.Is(err, cache.ErrKeyNotFound) {
		return nil, apperr.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, apperr.NewPersistenceError("load", err)
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		// 快照毀損視同不可讀，由上層決定 fallback
		return nil, apperr.NewPersistenceError("load", err)
	}

	return &model.Cart{
		CartID: cartID,
		Items:  items,
	}, nil
}

func (r *CartRepo) Delete(ctx context.Context, cartID string) error {
	if err := r.cartCache.Delete(ctx, generateCartSnapshotKey(cartID)); err != nil {
		return apperr.NewPersistenceError("delete", err)
	}
	return nil
}
