package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ArtytL/loh2-site/internal/domain"
	"github.com/ArtytL/loh2-site/internal/infrastructure/kvstore"
)

const (
	productsKey   = "products"
	productSeqKey = "product:seq"
)

type ProductRepositoryImpl struct {
	store kvstore.Store
}

func CreateProductRepository(store kvstore.Store) ProductRepository {
	return &ProductRepositoryImpl{store: store}
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context) (items []domain.Product, err error) {
	raw, err := r.store.Get(ctx, productsKey)
	if err != nil {
		return
	}

	return dedupeByID(DecodeCollection[domain.Product](raw)), nil
}

func (r *ProductRepositoryImpl) ReplaceProducts(ctx context.Context, items []domain.Product) (err error) {
	encoded, err := EncodeCollection(items)
	if err != nil {
		return
	}

	return r.store.Set(ctx, productsKey, encoded)
}

func (r *ProductRepositoryImpl) ReplaceProductsWithSequence(ctx context.Context, items []domain.Product, seq int64) (err error) {
	encoded, err := EncodeCollection(items)
	if err != nil {
		return
	}

	return r.store.SetMulti(ctx, []kvstore.Pair{
		{Key: productsKey, Value: encoded},
		{Key: productSeqKey, Value: strconv.FormatInt(seq, 10)},
	})
}

func (r *ProductRepositoryImpl) NextProductID(ctx context.Context, existing []domain.Product, mediaType domain.MediaType) (id string, err error) {
	seq, err := nextSequence(ctx, r.store, productSeqKey, maxProductSuffix(existing))
	if err != nil {
		return
	}

	return fmt.Sprintf("%s-%03d", mediaType.IDPrefix(), seq), nil
}

func (r *ProductRepositoryImpl) SyncSequence(ctx context.Context) (err error) {
	items, err := r.GetProducts(ctx)
	if err != nil {
		return
	}

	return syncSequence(ctx, r.store, productSeqKey, maxProductSuffix(items))
}

func maxProductSuffix(items []domain.Product) int64 {
	var max int64
	for _, item := range items {
		if suffix := idSuffix(item.ID); suffix > max {
			max = suffix
		}
	}
	return max
}

// dedupeByID keeps the last occurrence of each id, preserving first-seen
// order. Early write conventions could leave the same id in the list twice.
func dedupeByID(items []domain.Product) []domain.Product {
	index := make(map[string]int, len(items))
	deduped := make([]domain.Product, 0, len(items))
	for _, item := range items {
		if at, ok := index[item.ID]; ok {
			deduped[at] = item
			continue
		}
		index[item.ID] = len(deduped)
		deduped = append(deduped, item)
	}
	return deduped
}
