package repositories

import (
	"shoplite/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// immutable once created, so there is no update or delete.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetAll() ([]models.Order, error)
}
