package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArtytL/loh2-site/internal/domain"
	"github.com/ArtytL/loh2-site/internal/dto"
	"github.com/ArtytL/loh2-site/internal/infrastructure/kvstore"
	"github.com/ArtytL/loh2-site/internal/repository"
	"github.com/ArtytL/loh2-site/pkg/errs"
)

type stubGate struct {
	allow bool
}

func (g stubGate) Authorize(token string) bool {
	return g.allow
}

const adminToken = "test-token"

func newProductService(t *testing.T) (ProductService, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.CreateMemoryStore()
	svc := CreateProductService(repository.CreateProductRepository(store), stubGate{allow: true})
	return svc, store
}

func TestGetProductsNeverNil(t *testing.T) {
	svc, _ := newProductService(t)

	items, err := svc.GetProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAddProductAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductService(t)

	first, err := svc.AddProduct(ctx, adminToken, dto.ProductRequest{Title: "Film A", MediaType: "DVD", Price: 120, StockQty: 5})
	require.NoError(t, err)
	assert.Equal(t, "DVD-001", first.ID)
	assert.NotZero(t, first.CreatedAt)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	second, err := svc.AddProduct(ctx, adminToken, dto.ProductRequest{Title: "Film B", MediaType: "DVD", Price: 80, StockQty: 2})
	require.NoError(t, err)
	assert.Equal(t, "DVD-002", second.ID)
}

func TestAddProductValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductService(t)

	testCases := []struct {
		name    string
		req     dto.ProductRequest
		wantErr error
	}{
		{name: "blank title", req: dto.ProductRequest{Title: "   ", MediaType: "DVD"}, wantErr: errs.ErrMissingTitle},
		{name: "missing title", req: dto.ProductRequest{MediaType: "DVD"}, wantErr: errs.ErrMissingTitle},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddProduct(ctx, adminToken, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAddProductNormalizesInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductService(t)

	item, err := svc.AddProduct(ctx, adminToken, dto.ProductRequest{
		Title:     "Film A",
		MediaType: "VHS",
		Price:     -10,
		StockQty:  -3,
		Images:    []string{"a.jpg", "", "b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.MediaTypeDVD, item.MediaType, "unknown media type falls back to DVD")
	assert.Equal(t, float64(0), item.Price)
	assert.Equal(t, int64(0), item.StockQty)
	assert.Len(t, item.Images, domain.MaxGalleryImages)
	assert.Equal(t, "a.jpg", item.Cover, "cover defaults to first gallery image")
}

func TestUpdateProductMergesOnlyPatchedFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductService(t)

	created, err := svc.AddProduct(ctx, adminToken, dto.ProductRequest{
		Title: "Film A", MediaType: "DVD", Price: 120, StockQty: 5,
		Images: []string{"a.jpg"}, YoutubeURL: "https://youtu.be/x", Description: "desc",
	})
	require.NoError(t, err)

	price := 10.0
	updated, err := svc.UpdateProduct(ctx, adminToken, created.ID, dto.ProductPatch{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, float64(10), updated.Price)
	assert.GreaterOrEqual(t, updated.UpdatedAt, created.UpdatedAt)

	// Everything except price and updatedAt is untouched.
	updated.Price = created.Price
	updated.UpdatedAt = created.UpdatedAt
	assert.Equal(t, created, updated)
}

func TestUpdateProductClampsNumericPatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductService(t)

	created, err := svc.AddProduct(ctx, adminToken, dto.ProductRequest{Title: "Film A", MediaType: "DVD", Price: 120, StockQty: 5})
	require.NoError(t, err)

	price := -99.0
	qty := int64(-1)
	updated, err := svc.UpdateProduct(ctx, adminToken, created.ID, dto.ProductPatch{Price: &price, StockQty: &qty})
	require.NoError(t, err)

	assert.Equal(t, float64(0), updated.Price)
	assert.Equal(t, int64(0), updated.StockQty)
}

func TestUpdateProductNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductService(t)

	price := 10.0
	_, err := svc.UpdateProduct(ctx, adminToken, "DVD-999", dto.ProductPatch{Price: &price})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductService(t)

	created, err := svc.AddProduct(ctx, adminToken, dto.ProductRequest{Title: "Film A", MediaType: "DVD"})
	require.NoError(t, err)

	deleted, err := svc.DeleteProduct(ctx, adminToken, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteProduct(ctx, adminToken, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete of the same id is a no-op")

	items, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestProductMutationsRequireAuthorization(t *testing.T) {
	ctx := context.Background()
	store := kvstore.CreateMemoryStore()
	repo := repository.CreateProductRepository(store)
	allowed := CreateProductService(repo, stubGate{allow: true})
	denied := CreateProductService(repo, stubGate{allow: false})

	_, err := allowed.AddProduct(ctx, adminToken, dto.ProductRequest{Title: "Film A", MediaType: "DVD"})
	require.NoError(t, err)

	before, err := store.Get(ctx, "products")
	require.NoError(t, err)

	_, err = denied.AddProduct(ctx, "bad", dto.ProductRequest{Title: "Film B", MediaType: "DVD"})
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	price := 1.0
	_, err = denied.UpdateProduct(ctx, "bad", "DVD-001", dto.ProductPatch{Price: &price})
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = denied.DeleteProduct(ctx, "bad", "DVD-001")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = denied.RepairProducts(ctx, "bad")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	after, err := store.Get(ctx, "products")
	require.NoError(t, err)
	assert.Equal(t, before, after, "denied calls must leave the collection byte-for-byte unchanged")

	// Public list still works without a credential.
	items, err := allowed.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRepairProductsNormalizesLegacyRecords(t *testing.T) {
	ctx := context.Background()
	store := kvstore.CreateMemoryStore()
	svc := CreateProductService(repository.CreateProductRepository(store), stubGate{allow: true})

	legacy := `{"value":"[{\"id\":\"DVD-004\",\"title\":\"  Film D \",\"type\":\"Betamax\",\"price\":-5,\"qty\":-2,\"images\":[\"a.jpg\",\"\",\"b.jpg\"]},{\"title\":\"No ID\",\"type\":\"DVD\",\"price\":10,\"qty\":1}]"}`
	require.NoError(t, store.Set(ctx, "products", legacy))

	resp, err := svc.RepairProducts(ctx, adminToken)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 2, resp.Changed)

	items, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Film D", items[0].Title)
	assert.Equal(t, domain.MediaTypeDVD, items[0].MediaType)
	assert.Equal(t, float64(0), items[0].Price)
	assert.Equal(t, int64(0), items[0].StockQty)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, items[0].Images)
	assert.Equal(t, "a.jpg", items[0].Cover)

	assert.Equal(t, "DVD-005", items[1].ID, "missing id minted above the max suffix")

	rawSeq, err := store.Get(ctx, "product:seq")
	require.NoError(t, err)
	assert.Equal(t, "5", string(rawSeq))

	raw, err := store.Get(ctx, "products")
	require.NoError(t, err)
	assert.Equal(t, byte('['), raw[0], "repair rewrites the canonical shape")
}
