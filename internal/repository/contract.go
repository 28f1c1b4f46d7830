package repository

import (
	"context"

	"github.com/ArtytL/loh2-site/internal/domain"
)

type ProductRepository interface {
	GetProducts(ctx context.Context) (items []domain.Product, err error)
	ReplaceProducts(ctx context.Context, items []domain.Product) (err error)
	// ReplaceProductsWithSequence writes the collection and its counter in a
	// single pipeline round trip.
	ReplaceProductsWithSequence(ctx context.Context, items []domain.Product, seq int64) (err error)
	NextProductID(ctx context.Context, existing []domain.Product, mediaType domain.MediaType) (id string, err error)
	SyncSequence(ctx context.Context) (err error)
}

type OrderRepository interface {
	GetOrders(ctx context.Context) (items []domain.Order, err error)
	ReplaceOrders(ctx context.Context, items []domain.Order) (err error)
	NextOrderID(ctx context.Context, existing []domain.Order) (id string, err error)
	SyncSequence(ctx context.Context) (err error)
}
