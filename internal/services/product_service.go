package services

import (
	"math"
	"strconv"

	"shoplite/internal/models"
	"shoplite/internal/repositories"
)

// Listing defaults when page/limit are absent or malformed.
const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// ParseListQuery coerces raw string query parameters into a ListQuery.
// The coercion is deliberately permissive: malformed numbers degrade to
// their default (page/limit) or are ignored (price bounds) instead of
// failing the request, and an unrecognized sort falls back to newest.
func ParseListQuery(search, category, minPrice, maxPrice, sortBy, page, limit string) models.ListQuery {
	query := models.ListQuery{
		Search:   search,
		Category: category,
		SortBy:   sortBy,
		Page:     DefaultPage,
		Limit:    DefaultLimit,
	}

	if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
		query.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
		query.MaxPrice = &v
	}
	if v, err := strconv.Atoi(page); err == nil && v > 0 {
		query.Page = v
	}
	if v, err := strconv.Atoi(limit); err == nil && v > 0 {
		query.Limit = v
	}

	switch sortBy {
	case models.SortPriceLow, models.SortPriceHigh, models.SortRating, models.SortNewest:
	default:
		query.SortBy = models.SortNewest
	}

	return query
}

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts runs the catalog query and returns one page of products
// with pagination metadata. A page past the end of the result set comes
// back as an empty product list, not an error.
func (s *ProductService) ListProducts(query models.ListQuery) (*models.ProductPage, error) {
	products, total, err := s.repo.List(query)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return &models.ProductPage{
		Products: products,
		Page:     query.Page,
		Pages:    int(math.Ceil(float64(total) / float64(query.Limit))),
		Total:    total,
	}, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// ListCategories returns the distinct category values currently in use.
func (s *ProductService) ListCategories() ([]string, error) {
	categories, err := s.repo.Categories()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// CreateProduct creates a new product. Used by the seed/admin path; the
// catalog engine itself only reads.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
