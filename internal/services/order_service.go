package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"shoplite/internal/models"
	"shoplite/internal/repositories"
	"shoplite/pkg/rabbitmq"
)

// ErrNoOrderItems is returned when a checkout is submitted with an empty
// item list. Handlers translate it to a 400.
var ErrNoOrderItems = errors.New("no order items")

// OrderService handles the mock checkout flow.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in
// which case order events are not published.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// CreateOrder computes the price breakdown for the submitted items,
// marks the order paid (mock checkout, no gateway is contacted) and
// persists it. An empty item list is rejected before anything is written.
//
// Submitted item prices are taken at face value: there is no
// re-validation against current catalog prices or stock. That mirrors the
// documented behavior of the original flow and would need fixing before
// real commerce use.
func (s *OrderService) CreateOrder(items []models.OrderItem, address models.ShippingAddress, paymentMethod models.PaymentMethod) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrNoOrderItems
	}

	breakdown := models.ComputePriceBreakdown(items)

	now := time.Now()
	order := &models.Order{
		ID:              uuid.New().String(),
		OrderItems:      items,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		ItemsPrice:      breakdown.ItemsPrice,
		ShippingPrice:   breakdown.ShippingPrice,
		TaxPrice:        breakdown.TaxPrice,
		TotalPrice:      breakdown.TotalPrice,
		IsPaid:          true,
		PaidAt:          &now,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Best-effort event publication; the order is already committed.
	if s.mqClient != nil {
		event := map[string]interface{}{
			"orderID": order.ID,
			"total":   order.TotalPrice,
			"paidAt":  order.PaidAt,
		}
		if err := s.mqClient.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// GetOrderByID retrieves an order and expands each item with the current
// catalog record for its product. Items whose product has since been
// removed keep their snapshot and carry no product reference.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	for i := range order.OrderItems {
		product, err := s.productRepo.GetByID(order.OrderItems[i].ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, err
		}
		order.OrderItems[i].Product = product
	}
	return order, nil
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}
