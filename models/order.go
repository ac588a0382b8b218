package models

import (
	"errors"
	"math"
	"time"
)

// MaxQuantity caps a single order line
const MaxQuantity = 1000

var ErrTotalOverflow = errors.New("order total overflows int64 cents")

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusCreated   OrderStatus = "CREATED"
	StatusPaid      OrderStatus = "PAID"
	StatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	UserID     uint        `json:"user_id" gorm:"not null;index"`
	User       *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Country    Country     `json:"country" gorm:"not null;index"`
	Status     OrderStatus `json:"status" gorm:"not null;default:'CREATED'"`
	TotalCents int64       `json:"total_cents" gorm:"not null;default:0"`
	Items      []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	OrderID        uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID     uint      `json:"menu_item_id" gorm:"not null"`
	MenuItem       *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity       int       `json:"quantity" gorm:"not null"`
	PriceEachCents int64     `json:"price_each_cents" gorm:"not null"` // snapshot price at time of order
	Name           string    `json:"name"`                             // snapshot name
}

// LineTotal is the snapshotted price multiplied by quantity
func (i OrderItem) LineTotal() (int64, error) {
	if i.PriceEachCents < 0 || i.Quantity < 0 {
		return 0, ErrTotalOverflow
	}
	if i.PriceEachCents > 0 && int64(i.Quantity) > math.MaxInt64/i.PriceEachCents {
		return 0, ErrTotalOverflow
	}
	return i.PriceEachCents * int64(i.Quantity), nil
}

// ComputeTotal sums every item's line total, failing instead of wrapping
func ComputeTotal(items []OrderItem) (int64, error) {
	var total int64
	for _, it := range items {
		line, err := it.LineTotal()
		if err != nil {
			return 0, err
		}
		if total > math.MaxInt64-line {
			return 0, ErrTotalOverflow
		}
		total += line
	}
	return total, nil
}
