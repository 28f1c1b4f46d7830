package dto

type OrderItemRequest struct {
	ProductID string  `json:"id"`
	Title     string  `json:"title"`
	MediaType string  `json:"type"`
	Qty       int64   `json:"qty"`
	UnitPrice float64 `json:"price"`
}

type OrderRequest struct {
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	Phone   string             `json:"phone"`
	Address string             `json:"address"`
	Note    string             `json:"note"`
	Cart    []OrderItemRequest `json:"cart"`
}

// OrderFlagsPatch carries the admin-only status toggles. Only non-nil flags
// are applied.
type OrderFlagsPatch struct {
	Paid    *bool `json:"paid"`
	Shipped *bool `json:"shipped"`
}
