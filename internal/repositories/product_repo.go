package repositories

import (
	"errors"

	"shoplite/internal/models"
)

// ErrNotFound is returned when a requested record does not exist. Handlers
// translate it to a 404.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List executes a filter/sort/paginate query and returns one page of
	// products plus the total number of matching products.
	List(query models.ListQuery) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	// Categories returns the distinct category values in use, sorted.
	Categories() ([]string, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	Count() (int64, error)
}
