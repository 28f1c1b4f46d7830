package domain

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Note    string `json:"note,omitempty"`
}

type OrderItem struct {
	ProductID string    `json:"id"`
	Title     string    `json:"title"`
	MediaType MediaType `json:"type"`
	Qty       int64     `json:"qty"`
	UnitPrice float64   `json:"price"`
}

type Order struct {
	ID          string      `json:"id"`
	Customer    Customer    `json:"customer"`
	Items       []OrderItem `json:"items"`
	ShippingFee float64     `json:"shipping"`
	GrandTotal  float64     `json:"total"`
	Paid        bool        `json:"paid"`
	Shipped     bool        `json:"shipped"`
	CreatedAt   int64       `json:"createdAt"`
	UpdatedAt   int64       `json:"updatedAt,omitempty"`
}
