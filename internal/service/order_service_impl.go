package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ArtytL/loh2-site/config"
	"github.com/ArtytL/loh2-site/internal/auth"
	"github.com/ArtytL/loh2-site/internal/domain"
	"github.com/ArtytL/loh2-site/internal/dto"
	"github.com/ArtytL/loh2-site/internal/infrastructure/notification"
	"github.com/ArtytL/loh2-site/internal/repository"
	"github.com/ArtytL/loh2-site/pkg/errs"
)

type OrderServiceImpl struct {
	repository repository.OrderRepository
	gate       auth.Gate
	notifier   notification.Notifier
	config     *config.Config
}

func CreateOrderService(repository repository.OrderRepository, gate auth.Gate, notifier notification.Notifier, config *config.Config) OrderService {
	return &OrderServiceImpl{
		repository: repository,
		gate:       gate,
		notifier:   notifier,
		config:     config,
	}
}

// GetOrders requires the admin gate: order history is not public.
func (s *OrderServiceImpl) GetOrders(ctx context.Context, token string) (items []domain.Order, err error) {
	if !s.gate.Authorize(token) {
		return nil, errs.ErrUnauthorized
	}

	items, err = s.repository.GetOrders(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	if items == nil {
		items = []domain.Order{}
	}
	return
}

// AddOrder is the public checkout path; it takes no credential. All
// validation happens before any write, and totals are recomputed here rather
// than taken from the caller.
func (s *OrderServiceImpl) AddOrder(ctx context.Context, req dto.OrderRequest) (item domain.Order, err error) {
	if len(req.Cart) == 0 {
		return item, errs.ErrEmptyCart
	}
	if strings.TrimSpace(req.Email) == "" {
		return item, fmt.Errorf("%w: customer email is required", errs.ErrClient)
	}

	orderItems := make([]domain.OrderItem, 0, len(req.Cart))
	for _, line := range req.Cart {
		if line.Qty <= 0 {
			return item, errs.ErrInvalidQuantity
		}
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: line.ProductID,
			Title:     line.Title,
			MediaType: domain.MediaType(line.MediaType),
			Qty:       line.Qty,
			UnitPrice: clampMoney(line.UnitPrice),
		})
	}

	items, err := s.repository.GetOrders(ctx)
	if err != nil {
		return
	}

	id, err := s.repository.NextOrderID(ctx, items)
	if err != nil {
		return
	}

	item = domain.Order{
		ID: id,
		Customer: domain.Customer{
			Name:    strings.TrimSpace(req.Name),
			Email:   strings.TrimSpace(req.Email),
			Phone:   strings.TrimSpace(req.Phone),
			Address: strings.TrimSpace(req.Address),
			Note:    strings.TrimSpace(req.Note),
		},
		Items:       orderItems,
		ShippingFee: ShippingFee(orderItems, s.config.ShippingFlatRate),
		GrandTotal:  GrandTotal(orderItems, s.config.ShippingFlatRate),
		CreatedAt:   time.Now().UnixMilli(),
	}

	// Newest first, for display ordering.
	items = append([]domain.Order{item}, items...)
	if err = s.repository.ReplaceOrders(ctx, items); err != nil {
		return
	}

	if notifyErr := s.notifier.OrderCreated(ctx, item); notifyErr != nil {
		log.Error().Err(notifyErr).Str("component", "AddOrder").Str("order_id", item.ID).Msg("order notification failed")
	}

	return item, nil
}

func (s *OrderServiceImpl) UpdateOrderFlags(ctx context.Context, token string, id string, patch dto.OrderFlagsPatch) (item domain.Order, err error) {
	if !s.gate.Authorize(token) {
		return item, errs.ErrUnauthorized
	}

	items, err := s.repository.GetOrders(ctx)
	if err != nil {
		return
	}

	at := -1
	for i := range items {
		if items[i].ID == id {
			at = i
			break
		}
	}
	if at < 0 {
		return item, errs.ErrNotFound
	}

	if patch.Paid != nil {
		items[at].Paid = *patch.Paid
	}
	if patch.Shipped != nil {
		items[at].Shipped = *patch.Shipped
	}
	items[at].UpdatedAt = time.Now().UnixMilli()

	if err = s.repository.ReplaceOrders(ctx, items); err != nil {
		return
	}

	return items[at], nil
}

func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, token string, id string) (deleted bool, err error) {
	if !s.gate.Authorize(token) {
		return false, errs.ErrUnauthorized
	}

	items, err := s.repository.GetOrders(ctx)
	if err != nil {
		return
	}

	kept := make([]domain.Order, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	deleted = len(kept) != len(items)
	if !deleted {
		return false, nil
	}

	if err = s.repository.ReplaceOrders(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}
