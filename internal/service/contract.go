package service

import (
	"context"

	"github.com/ArtytL/loh2-site/internal/domain"
	"github.com/ArtytL/loh2-site/internal/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context) (items []domain.Product, err error)
	AddProduct(ctx context.Context, token string, req dto.ProductRequest) (item domain.Product, err error)
	UpdateProduct(ctx context.Context, token string, id string, patch dto.ProductPatch) (item domain.Product, err error)
	DeleteProduct(ctx context.Context, token string, id string) (deleted bool, err error)
	RepairProducts(ctx context.Context, token string) (resp dto.RepairResponse, err error)
}

type OrderService interface {
	GetOrders(ctx context.Context, token string) (items []domain.Order, err error)
	AddOrder(ctx context.Context, req dto.OrderRequest) (item domain.Order, err error)
	UpdateOrderFlags(ctx context.Context, token string, id string, patch dto.OrderFlagsPatch) (item domain.Order, err error)
	DeleteOrder(ctx context.Context, token string, id string) (deleted bool, err error)
}

type AdminService interface {
	Login(ctx context.Context, req dto.AdminLoginRequest) (resp dto.AdminLoginResponse, err error)
}
