package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shoplite/internal/models"
	"shoplite/internal/repositories"
	"shoplite/internal/services"
)

func TestParseListQuery_Defaults(t *testing.T) {
	query := services.ParseListQuery("", "", "", "", "", "", "")

	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 12, query.Limit)
	assert.Equal(t, models.SortNewest, query.SortBy)
	assert.Nil(t, query.MinPrice)
	assert.Nil(t, query.MaxPrice)
}

func TestParseListQuery_MalformedNumericsDegrade(t *testing.T) {
	// Malformed numerics are coerced to their default/ignored state, not
	// rejected.
	query := services.ParseListQuery("", "", "abc", "1x0", "", "zero", "-4")

	assert.Nil(t, query.MinPrice)
	assert.Nil(t, query.MaxPrice)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 12, query.Limit)
}

func TestParseListQuery_ValidParameters(t *testing.T) {
	query := services.ParseListQuery("lamp", "Home", "10.5", "99.9", "price-low", "3", "20")

	assert.Equal(t, "lamp", query.Search)
	assert.Equal(t, "Home", query.Category)
	assert.NotNil(t, query.MinPrice)
	assert.InDelta(t, 10.5, *query.MinPrice, 0.0001)
	assert.NotNil(t, query.MaxPrice)
	assert.InDelta(t, 99.9, *query.MaxPrice, 0.0001)
	assert.Equal(t, models.SortPriceLow, query.SortBy)
	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 20, query.Limit)
}

func TestParseListQuery_UnknownSortFallsBackToNewest(t *testing.T) {
	query := services.ParseListQuery("", "", "", "", "alphabetical", "", "")
	assert.Equal(t, models.SortNewest, query.SortBy)
}

// seedCatalog fills a repository with a deterministic catalog for the
// query pipeline tests.
func seedCatalog(t *testing.T, repo repositories.ProductRepository, n int) {
	t.Helper()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	categories := []models.Category{
		models.CategoryElectronics,
		models.CategoryClothing,
		models.CategoryBooks,
	}
	for i := 0; i < n; i++ {
		p := models.Product{
			ID:          fmt.Sprintf("prod-%03d", i),
			Name:        fmt.Sprintf("Product %d", i),
			Description: "A test product",
			Price:       float64(10 + i*5),
			Image:       "/images/test.jpg",
			Category:    categories[i%len(categories)],
			Brand:       "TestBrand",
			InStock:     true,
			StockCount:  10,
			Rating:      float64(i%6) * 0.9,
			NumReviews:  i,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		assert.NoError(t, repo.Create(&p))
	}
}

func TestListProducts_PaginationMetadata(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo)
	seedCatalog(t, repo, 30)

	page, err := service.ListProducts(services.ParseListQuery("", "", "", "", "", "1", "12"))
	assert.NoError(t, err)
	assert.Len(t, page.Products, 12)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.Pages, "pages must be ceil(30/12)")
	assert.Equal(t, int64(30), page.Total)

	// Last page holds the remainder.
	page, err = service.ListProducts(services.ParseListQuery("", "", "", "", "", "3", "12"))
	assert.NoError(t, err)
	assert.Len(t, page.Products, 6)

	// A page past the end is empty, not an error.
	page, err = service.ListProducts(services.ParseListQuery("", "", "", "", "", "9", "12"))
	assert.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Equal(t, 9, page.Page)
	assert.Equal(t, int64(30), page.Total)
}

func TestListProducts_CategoryFilter(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo)
	seedCatalog(t, repo, 30)

	page, err := service.ListProducts(services.ParseListQuery("", "Books", "", "", "", "1", "50"))
	assert.NoError(t, err)
	assert.NotEmpty(t, page.Products)
	for _, p := range page.Products {
		assert.Equal(t, models.CategoryBooks, p.Category)
	}
}

func TestListProducts_PriceRange(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo)
	seedCatalog(t, repo, 30)

	page, err := service.ListProducts(services.ParseListQuery("", "", "50", "100", "", "1", "50"))
	assert.NoError(t, err)
	assert.NotEmpty(t, page.Products)
	for _, p := range page.Products {
		assert.GreaterOrEqual(t, p.Price, 50.0)
		assert.LessOrEqual(t, p.Price, 100.0)
	}

	// Bounds are inclusive and may be supplied alone.
	page, err = service.ListProducts(services.ParseListQuery("", "", "145", "", "", "1", "50"))
	assert.NoError(t, err)
	for _, p := range page.Products {
		assert.GreaterOrEqual(t, p.Price, 145.0)
	}
}

func TestListProducts_SortOrders(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo)
	seedCatalog(t, repo, 30)

	page, err := service.ListProducts(services.ParseListQuery("", "", "", "", "price-low", "1", "50"))
	assert.NoError(t, err)
	for i := 1; i < len(page.Products); i++ {
		assert.LessOrEqual(t, page.Products[i-1].Price, page.Products[i].Price)
	}

	page, err = service.ListProducts(services.ParseListQuery("", "", "", "", "price-high", "1", "50"))
	assert.NoError(t, err)
	for i := 1; i < len(page.Products); i++ {
		assert.GreaterOrEqual(t, page.Products[i-1].Price, page.Products[i].Price)
	}

	page, err = service.ListProducts(services.ParseListQuery("", "", "", "", "rating", "1", "50"))
	assert.NoError(t, err)
	for i := 1; i < len(page.Products); i++ {
		assert.GreaterOrEqual(t, page.Products[i-1].Rating, page.Products[i].Rating)
	}

	// Default sort: newest first.
	page, err = service.ListProducts(services.ParseListQuery("", "", "", "", "", "1", "50"))
	assert.NoError(t, err)
	for i := 1; i < len(page.Products); i++ {
		assert.False(t, page.Products[i-1].CreatedAt.Before(page.Products[i].CreatedAt))
	}
}

func TestListProducts_SearchMatchesNameDescriptionBrand(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo)

	products := []models.Product{
		{ID: "a", Name: "Wireless Mouse", Description: "ergonomic", Brand: "Clicky", Category: models.CategoryElectronics},
		{ID: "b", Name: "Desk Lamp", Description: "warm wireless charging base", Brand: "Glow", Category: models.CategoryHome},
		{ID: "c", Name: "Novel", Description: "a story", Brand: "WirelessPress", Category: models.CategoryBooks},
		{ID: "d", Name: "Socks", Description: "wool", Brand: "Cozy", Category: models.CategoryClothing},
	}
	for i := range products {
		products[i].Image = "/images/x.jpg"
		products[i].Description += " item"
		assert.NoError(t, repo.Create(&products[i]))
	}

	// Case-insensitive substring match, OR-combined over the three fields.
	page, err := service.ListProducts(services.ParseListQuery("WIRELESS", "", "", "", "", "1", "50"))
	assert.NoError(t, err)
	assert.Len(t, page.Products, 3)

	ids := make([]string, 0, len(page.Products))
	for _, p := range page.Products {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, ids)
}

func TestListCategories_OnlyCategoriesInUse(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo)
	seedCatalog(t, repo, 9) // Electronics, Clothing, Books only

	categories, err := service.ListCategories()
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Books", "Clothing", "Electronics"}, categories)
}

func TestGetProductByID(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo)
	seedCatalog(t, repo, 3)

	product, err := service.GetProductByID("prod-001")
	assert.NoError(t, err)
	assert.Equal(t, "Product 1", product.Name)

	product, err = service.GetProductByID("missing")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
