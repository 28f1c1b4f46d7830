package domain

const MaxGalleryImages = 5

type MediaType string

const (
	MediaTypeDVD    MediaType = "DVD"
	MediaTypeBluRay MediaType = "Blu-ray"
)

// IDPrefix returns the prefix used when minting ids for this media type.
// Unknown types fall back to the DVD prefix, mirroring how historical
// records were repaired.
func (m MediaType) IDPrefix() string {
	if m == MediaTypeBluRay {
		return "BLU"
	}
	return "DVD"
}

// Valid reports whether m is one of the known media types.
func (m MediaType) Valid() bool {
	return m == MediaTypeDVD || m == MediaTypeBluRay
}

type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	MediaType   MediaType `json:"type"`
	Price       float64   `json:"price"`
	StockQty    int64     `json:"qty"`
	Cover       string    `json:"cover,omitempty"`
	Images      []string  `json:"images"`
	YoutubeURL  string    `json:"youtube,omitempty"`
	Description string    `json:"desc,omitempty"`
	CreatedAt   int64     `json:"createdAt"`
	UpdatedAt   int64     `json:"updatedAt"`
}
