// Package money holds the pure billing arithmetic shared by invoices and
// quotes. All functions are stateless and operate on exact decimals; rounding
// to display precision is the renderer's job, never done here, so summing many
// items cannot accumulate rounding drift.
package money

import (
	"errors"

	"github.com/shopspring/decimal"

	"whitepaper_billing/internal/domain/entities"
)

var (
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")
	ErrNegativeUnitPrice   = errors.New("unit price must not be negative")
	ErrNegativeTaxRate     = errors.New("tax rate must not be negative")
)

var oneHundred = decimal.NewFromInt(100)

// ValidateItem rejects items the calculator cannot price. Values are never
// clamped; the caller gets the violation back.
func ValidateItem(item entities.LineItem) error {
	if !item.Quantity.IsPositive() {
		return ErrNonPositiveQuantity
	}
	if item.UnitPrice.IsNegative() {
		return ErrNegativeUnitPrice
	}
	if item.TaxRate.IsNegative() {
		return ErrNegativeTaxRate
	}
	return nil
}

// LineSubtotal is quantity * unit price.
func LineSubtotal(item entities.LineItem) decimal.Decimal {
	return item.Quantity.Mul(item.UnitPrice)
}

// LineTax is the line subtotal taxed at the item's percentage rate.
func LineTax(item entities.LineItem) decimal.Decimal {
	return LineSubtotal(item).Mul(item.TaxRate).Div(oneHundred)
}

// LineTotal is the line subtotal plus its tax.
func LineTotal(item entities.LineItem) decimal.Decimal {
	return LineSubtotal(item).Add(LineTax(item))
}

// DocumentSubtotal sums unrounded line subtotals.
func DocumentSubtotal(items []entities.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(LineSubtotal(item))
	}
	return sum
}

// DocumentTax sums unrounded line taxes.
func DocumentTax(items []entities.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(LineTax(item))
	}
	return sum
}

// DocumentTotal is the document subtotal plus the document tax.
func DocumentTotal(items []entities.LineItem) decimal.Decimal {
	return DocumentSubtotal(items).Add(DocumentTax(items))
}
