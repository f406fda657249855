package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"whitepaper_billing/internal/domain/entities"
)

func item(quantity, unitPrice, taxRate string) entities.LineItem {
	return entities.LineItem{
		ID:          "item-1",
		Description: "widget",
		Quantity:    decimal.RequireFromString(quantity),
		UnitPrice:   decimal.RequireFromString(unitPrice),
		TaxRate:     decimal.RequireFromString(taxRate),
	}
}

func TestValidateItem(t *testing.T) {
	t.Run("zero quantity", func(t *testing.T) {
		if err := ValidateItem(item("0", "100", "15")); !errors.Is(err, ErrNonPositiveQuantity) {
			t.Fatalf("expected ErrNonPositiveQuantity, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		if err := ValidateItem(item("-1", "100", "15")); !errors.Is(err, ErrNonPositiveQuantity) {
			t.Fatalf("expected ErrNonPositiveQuantity, got %v", err)
		}
	})

	t.Run("negative unit price", func(t *testing.T) {
		if err := ValidateItem(item("1", "-0.01", "15")); !errors.Is(err, ErrNegativeUnitPrice) {
			t.Fatalf("expected ErrNegativeUnitPrice, got %v", err)
		}
	})

	t.Run("negative tax rate", func(t *testing.T) {
		if err := ValidateItem(item("1", "100", "-15")); !errors.Is(err, ErrNegativeTaxRate) {
			t.Fatalf("expected ErrNegativeTaxRate, got %v", err)
		}
	})

	t.Run("free item is valid", func(t *testing.T) {
		if err := ValidateItem(item("1", "0", "0")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLineAmounts(t *testing.T) {
	// The canonical scenario: 2 x 100 at 15% => 200 / 30 / 230.
	it := item("2", "100", "15")

	if got := LineSubtotal(it); !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("subtotal = %s, want 200", got)
	}
	if got := LineTax(it); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("tax = %s, want 30", got)
	}
	if got := LineTotal(it); !got.Equal(decimal.NewFromInt(230)) {
		t.Fatalf("total = %s, want 230", got)
	}
}

func TestLineTotalDecomposition(t *testing.T) {
	// lineTotal == lineSubtotal + lineTax exactly, including awkward fractions.
	for _, it := range []entities.LineItem{
		item("2", "100", "15"),
		item("0.5", "19.99", "7.5"),
		item("3", "33.33", "14.5"),
		item("7", "0.07", "1"),
	} {
		want := LineSubtotal(it).Add(LineTax(it))
		if got := LineTotal(it); !got.Equal(want) {
			t.Fatalf("line total %s != subtotal+tax %s for %+v", got, want, it)
		}
	}
}

func TestDocumentAggregates(t *testing.T) {
	items := []entities.LineItem{
		item("2", "100", "15"),
		item("2", "100", "15"),
	}

	if got := DocumentSubtotal(items); !got.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("document subtotal = %s, want 400", got)
	}
	if got := DocumentTax(items); !got.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("document tax = %s, want 60", got)
	}
	if got := DocumentTotal(items); !got.Equal(decimal.NewFromInt(460)) {
		t.Fatalf("document total = %s, want 460", got)
	}
}

func TestDocumentTotalMatchesSumOfLines(t *testing.T) {
	items := []entities.LineItem{
		item("0.5", "19.99", "7.5"),
		item("3", "33.33", "14.5"),
		item("1", "0.01", "0"),
	}

	wantSubtotal := decimal.Zero
	wantTax := decimal.Zero
	for _, it := range items {
		wantSubtotal = wantSubtotal.Add(LineSubtotal(it))
		wantTax = wantTax.Add(LineTax(it))
	}

	if got := DocumentSubtotal(items); !got.Equal(wantSubtotal) {
		t.Fatalf("subtotal %s != per-line sum %s", got, wantSubtotal)
	}
	if got := DocumentTax(items); !got.Equal(wantTax) {
		t.Fatalf("tax %s != per-line sum %s", got, wantTax)
	}
	if got := DocumentTotal(items); !got.Equal(wantSubtotal.Add(wantTax)) {
		t.Fatalf("total %s != subtotal+tax", got)
	}
}

func TestDeterminism(t *testing.T) {
	items := []entities.LineItem{
		item("0.5", "19.99", "7.5"),
		item("3", "33.33", "14.5"),
	}

	first := DocumentTotal(items)
	second := DocumentTotal(items)
	if !first.Equal(second) {
		t.Fatalf("recomputation drifted: %s then %s", first, second)
	}
}

func TestEmptyItemsSumToZero(t *testing.T) {
	if got := DocumentTotal(nil); !got.IsZero() {
		t.Fatalf("total of no items = %s, want 0", got)
	}
}
