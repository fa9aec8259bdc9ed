package domain

import (
	"errors"
	"time"
)

// StockStatus is derived from the quantity on hand, never stored.
type StockStatus string

const (
	StockIn  StockStatus = "In Stock"
	StockLow StockStatus = "Low Stock"
	StockOut StockStatus = "Out of Stock"
)

// LowStockThreshold is the quantity below which a drug counts as low stock.
const LowStockThreshold = 50

var (
	ErrDrugNotFound      = errors.New("drug not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Drug is one pharmacy inventory row.
type Drug struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Expiry    time.Time `json:"expiry"`
	Supplier  string    `json:"supplier"`
}

// StockStatus derives the shelf state from the quantity on hand.
func (d *Drug) StockStatus() StockStatus {
	switch {
	case d.Quantity <= 0:
		return StockOut
	case d.Quantity < LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// TotalValue is quantity times unit price.
func (d *Drug) TotalValue() float64 {
	return float64(d.Quantity) * d.UnitPrice
}
