package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID              int64             `json:"id"`
	TransactionID   string            `json:"transaction_id"`
	TransactionType TransactionType   `json:"transaction_type"`
	Status          TransactionStatus `json:"status"`
	Notes           string            `json:"notes"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	CreatedAt       Timestamp         `json:"created_at"`
	Items           []TransactionItem `json:"items"`
}

// DisplayCode is the transaction code shown to users, falling back to the numeric id.
func (t Transaction) DisplayCode() string {
	if t.TransactionID != "" {
		return t.TransactionID
	}
	return strconv.FormatInt(t.ID, 10)
}

type TransactionItem struct {
	Product   int64           `json:"product" validate:"required"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// Subtotal is quantity × unit price.
func (i TransactionItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TransactionInput is the POST body for /api/transactions/.
type TransactionInput struct {
	TransactionType TransactionType   `json:"transaction_type" validate:"required,oneof=sale purchase"`
	Status          TransactionStatus `json:"status" validate:"required,oneof=pending completed cancelled"`
	Notes           string            `json:"notes"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	Items           []TransactionItem `json:"items" validate:"min=1,dive"`
}

// SumItems returns Σ quantity × unit_price over items.
func SumItems(items []TransactionItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
