package repository

import (
	"context"
	"fmt"

	"github.com/ArtytL/loh2-site/internal/domain"
	"github.com/ArtytL/loh2-site/internal/infrastructure/kvstore"
)

const (
	ordersKey   = "orders"
	orderSeqKey = "order:seq"
)

type OrderRepositoryImpl struct {
	store kvstore.Store
}

func CreateOrderRepository(store kvstore.Store) OrderRepository {
	return &OrderRepositoryImpl{store: store}
}

func (r *OrderRepositoryImpl) GetOrders(ctx context.Context) (items []domain.Order, err error) {
	raw, err := r.store.Get(ctx, ordersKey)
	if err != nil {
		return
	}

	return DecodeCollection[domain.Order](raw), nil
}

func (r *OrderRepositoryImpl) ReplaceOrders(ctx context.Context, items []domain.Order) (err error) {
	encoded, err := EncodeCollection(items)
	if err != nil {
		return
	}

	return r.store.Set(ctx, ordersKey, encoded)
}

func (r *OrderRepositoryImpl) NextOrderID(ctx context.Context, existing []domain.Order) (id string, err error) {
	seq, err := nextSequence(ctx, r.store, orderSeqKey, maxOrderSuffix(existing))
	if err != nil {
		return
	}

	return fmt.Sprintf("ORD-%04d", seq), nil
}

func (r *OrderRepositoryImpl) SyncSequence(ctx context.Context) (err error) {
	items, err := r.GetOrders(ctx)
	if err != nil {
		return
	}

	return syncSequence(ctx, r.store, orderSeqKey, maxOrderSuffix(items))
}

func maxOrderSuffix(items []domain.Order) int64 {
	var max int64
	for _, item := range items {
		if suffix := idSuffix(item.ID); suffix > max {
			max = suffix
		}
	}
	return max
}
