package dto

import "github.com/ArtytL/loh2-site/internal/domain"

type OrderListResponse struct {
	Items []domain.Order `json:"items"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
