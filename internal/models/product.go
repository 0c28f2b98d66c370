package models

import "time"

// Category is the closed set of product categories the store carries.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryBooks       Category = "Books"
	CategoryHome        Category = "Home"
	CategorySports      Category = "Sports"
	CategoryToys        Category = "Toys"
)

// Product represents a product in the catalog.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"required,max=500"`
	Price       float64   `json:"price" validate:"gte=0"`
	Image       string    `json:"image" validate:"required"`
	Category    Category  `json:"category" validate:"required,oneof=Electronics Clothing Books Home Sports Toys"`
	Brand       string    `json:"brand,omitempty" validate:"omitempty,max=100"`
	InStock     bool      `json:"inStock"`
	StockCount  int       `json:"stockCount" validate:"gte=0"`
	Rating      float64   `json:"rating" validate:"gte=0,lte=5"`
	NumReviews  int       `json:"numReviews" validate:"gte=0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Sort orders accepted by the catalog listing. Anything else falls back
// to SortNewest (descending creation order).
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// ListQuery is the filter/sort/pagination spec for a catalog listing.
// Zero-value fields mean "no filter"; MinPrice/MaxPrice are inclusive
// bounds and may be set independently. All supplied predicates are
// AND-combined.
type ListQuery struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	Page     int
	Limit    int
}

// Offset returns how many matching rows precede the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ProductPage is one page of a catalog listing plus pagination metadata.
type ProductPage struct {
	Products []Product `json:"products"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
	Total    int64     `json:"total"`
}
