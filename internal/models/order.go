package models

import "time"

// PaymentMethod is the closed set of payment methods the mock checkout
// accepts.
type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "Credit Card"
	PaymentPayPal         PaymentMethod = "PayPal"
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
)

// ShippingAddress is where an order ships to. All fields are required.
type ShippingAddress struct {
	FullName   string `json:"fullName" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// OrderItem is a snapshot of a cart item at submission time. Name, image
// and price are denormalized so the order keeps displaying correctly even
// if the product changes later. Product carries the current catalog record
// when the order is fetched and the product still exists.
type OrderItem struct {
	ID        uint     `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string   `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string   `json:"productId" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Image     string   `json:"image"`
	Price     float64  `json:"price" validate:"gte=0"`
	Quantity  int      `json:"quantity" validate:"gte=1"`
	Product   *Product `json:"product,omitempty" gorm:"-"`
}

// Order is a customer order created by the mock checkout. It is immutable
// once created.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderItems      []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:ship_"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	ItemsPrice      float64         `json:"itemsPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	TaxPrice        float64         `json:"taxPrice"`
	TotalPrice      float64         `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// PriceBreakdown is the computed price summary of an order.
type PriceBreakdown struct {
	ItemsPrice    float64 `json:"itemsPrice"`
	ShippingPrice float64 `json:"shippingPrice"`
	TaxPrice      float64 `json:"taxPrice"`
	TotalPrice    float64 `json:"totalPrice"`
}

// ComputePriceBreakdown derives the price summary for a set of order
// items: free shipping above 100, flat 10 otherwise, plus 10% tax.
// Checkout and any preview must both go through this function so the
// numbers can never disagree.
func ComputePriceBreakdown(items []OrderItem) PriceBreakdown {
	var itemsPrice float64
	for _, item := range items {
		itemsPrice += item.Price * float64(item.Quantity)
	}

	shippingPrice := 10.0
	if itemsPrice > 100 {
		shippingPrice = 0
	}
	taxPrice := itemsPrice * 0.10

	return PriceBreakdown{
		ItemsPrice:    itemsPrice,
		ShippingPrice: shippingPrice,
		TaxPrice:      taxPrice,
		TotalPrice:    itemsPrice + shippingPrice + taxPrice,
	}
}
