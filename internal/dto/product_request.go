package dto

import "github.com/ArtytL/loh2-site/internal/domain"

type ProductRequest struct {
	Title       string   `json:"title"`
	MediaType   string   `json:"type"`
	Price       float64  `json:"price"`
	StockQty    int64    `json:"qty"`
	Cover       string   `json:"cover"`
	Images      []string `json:"images"`
	YoutubeURL  string   `json:"youtube"`
	Description string   `json:"desc"`
}

// ProductPatch carries a partial update. Only non-nil fields are applied to
// the stored record.
type ProductPatch struct {
	Title       *string   `json:"title"`
	MediaType   *string   `json:"type"`
	Price       *float64  `json:"price"`
	StockQty    *int64    `json:"qty"`
	Cover       *string   `json:"cover"`
	Images      *[]string `json:"images"`
	YoutubeURL  *string   `json:"youtube"`
	Description *string   `json:"desc"`
}

func (r ProductRequest) ToDomain() domain.Product {
	return domain.Product{
		Title:       r.Title,
		MediaType:   domain.MediaType(r.MediaType),
		Price:       r.Price,
		StockQty:    r.StockQty,
		Cover:       r.Cover,
		Images:      r.Images,
		YoutubeURL:  r.YoutubeURL,
		Description: r.Description,
	}
}
