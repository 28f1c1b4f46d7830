package dto

import "github.com/ArtytL/loh2-site/internal/domain"

type ProductListResponse struct {
	Items []domain.Product `json:"items"`
}

type RepairResponse struct {
	Count   int `json:"count"`
	Changed int `json:"changed"`
}
