package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ArtytL/loh2-site/internal/auth"
	"github.com/ArtytL/loh2-site/internal/domain"
	"github.com/ArtytL/loh2-site/internal/dto"
	"github.com/ArtytL/loh2-site/internal/repository"
	"github.com/ArtytL/loh2-site/pkg/errs"
)

type ProductServiceImpl struct {
	repository repository.ProductRepository
	gate       auth.Gate
}

func CreateProductService(repository repository.ProductRepository, gate auth.Gate) ProductService {
	return &ProductServiceImpl{repository: repository, gate: gate}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (items []domain.Product, err error) {
	items, err = s.repository.GetProducts(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if items == nil {
		items = []domain.Product{}
	}
	return
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, token string, req dto.ProductRequest) (item domain.Product, err error) {
	if !s.gate.Authorize(token) {
		return item, errs.ErrUnauthorized
	}

	item = req.ToDomain()
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return item, errs.ErrMissingTitle
	}
	normalizeProduct(&item)

	items, err := s.repository.GetProducts(ctx)
	if err != nil {
		return
	}

	item.ID, err = s.repository.NextProductID(ctx, items, item.MediaType)
	if err != nil {
		return
	}

	now := time.Now().UnixMilli()
	item.CreatedAt = now
	item.UpdatedAt = now

	items = append(items, item)
	if err = s.repository.ReplaceProducts(ctx, items); err != nil {
		return
	}

	return item, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, token string, id string, patch dto.ProductPatch) (item domain.Product, err error) {
	if !s.gate.Authorize(token) {
		return item, errs.ErrUnauthorized
	}

	items, err := s.repository.GetProducts(ctx)
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

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return item, errs.ErrMissingTitle
		}
		items[at].Title = title
	}
	if patch.MediaType != nil {
		if mt := domain.MediaType(*patch.MediaType); mt.Valid() {
			items[at].MediaType = mt
		}
	}
	if patch.Price != nil {
		items[at].Price = clampMoney(*patch.Price)
	}
	if patch.StockQty != nil {
		items[at].StockQty = clampQty(*patch.StockQty)
	}
	if patch.Cover != nil {
		items[at].Cover = strings.TrimSpace(*patch.Cover)
	}
	if patch.Images != nil {
		items[at].Images = clampImages(*patch.Images)
	}
	if patch.YoutubeURL != nil {
		items[at].YoutubeURL = strings.TrimSpace(*patch.YoutubeURL)
	}
	if patch.Description != nil {
		items[at].Description = *patch.Description
	}
	items[at].UpdatedAt = time.Now().UnixMilli()

	if err = s.repository.ReplaceProducts(ctx, items); err != nil {
		return
	}

	return items[at], nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, token string, id string) (deleted bool, err error) {
	if !s.gate.Authorize(token) {
		return false, errs.ErrUnauthorized
	}

	items, err := s.repository.GetProducts(ctx)
	if err != nil {
		return
	}

	kept := make([]domain.Product, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	deleted = len(kept) != len(items)
	if !deleted {
		// Deleting an absent id is a no-op, not an error.
		return false, nil
	}

	if err = s.repository.ReplaceProducts(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// RepairProducts renormalizes every stored record and resyncs the id counter
// with the highest suffix present. It exists because the collection has
// accumulated records written under older conventions.
func (s *ProductServiceImpl) RepairProducts(ctx context.Context, token string) (resp dto.RepairResponse, err error) {
	if !s.gate.Authorize(token) {
		return resp, errs.ErrUnauthorized
	}

	items, err := s.repository.GetProducts(ctx)
	if err != nil {
		return
	}

	maxSeq := int64(0)
	for _, item := range items {
		if suffix := productSuffix(item.ID); suffix > maxSeq {
			maxSeq = suffix
		}
	}

	changed := 0
	for i := range items {
		before, _ := json.Marshal(items[i])

		if items[i].ID == "" {
			maxSeq++
			items[i].ID = fmt.Sprintf("%s-%03d", domain.MediaTypeDVD.IDPrefix(), maxSeq)
		}
		if strings.TrimSpace(items[i].Title) == "" {
			items[i].Title = items[i].ID
		} else {
			items[i].Title = strings.TrimSpace(items[i].Title)
		}
		if !items[i].MediaType.Valid() {
			items[i].MediaType = domain.MediaTypeDVD
		}
		normalizeProduct(&items[i])
		items[i].UpdatedAt = time.Now().UnixMilli()

		after, _ := json.Marshal(items[i])
		if string(before) != string(after) {
			changed++
		}
	}

	if err = s.repository.ReplaceProductsWithSequence(ctx, items, maxSeq); err != nil {
		return
	}

	return dto.RepairResponse{Count: len(items), Changed: changed}, nil
}

// normalizeProduct enforces the record invariants: non-negative money and
// stock, at most five gallery images with empties dropped, cover defaulting
// to the first image.
func normalizeProduct(item *domain.Product) {
	if !item.MediaType.Valid() {
		item.MediaType = domain.MediaTypeDVD
	}
	item.Price = clampMoney(item.Price)
	item.StockQty = clampQty(item.StockQty)
	item.Images = clampImages(item.Images)
	item.Cover = strings.TrimSpace(item.Cover)
	if item.Cover == "" && len(item.Images) > 0 {
		item.Cover = item.Images[0]
	}
	item.YoutubeURL = strings.TrimSpace(item.YoutubeURL)
}

var productIDPattern = regexp.MustCompile(`(\d+)$`)

func productSuffix(id string) int64 {
	match := productIDPattern.FindStringSubmatch(id)
	if match == nil {
		return 0
	}
	n, _ := strconv.ParseInt(match[1], 10, 64)
	return n
}

func clampMoney(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func clampQty(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampImages(images []string) []string {
	cleaned := make([]string, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img) == "" {
			continue
		}
		cleaned = append(cleaned, img)
		if len(cleaned) == domain.MaxGalleryImages {
			break
		}
	}
	return cleaned
}
