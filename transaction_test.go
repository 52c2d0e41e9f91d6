package ledger

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewTransaction(t *testing.T) {
	day := MustParse("2025-03-10")

	t.Run("cash is fully settled at creation", func(t *testing.T) {
		tx := NewTransaction(day, Inbound, "m1", "p1", "Rice", W(10), M(100, "EGP"), Cash)
		if want := M(1000, "EGP"); !tx.TotalAmount.Equal(want) {
			t.Errorf("TotalAmount = %v, want %v", tx.TotalAmount, want)
		}
		if !tx.PaidAmount.Equal(tx.TotalAmount) {
			t.Errorf("PaidAmount = %v, want %v", tx.PaidAmount, tx.TotalAmount)
		}
		if !tx.Outstanding().IsZero() {
			t.Errorf("Outstanding() = %v, want zero", tx.Outstanding())
		}
	})

	t.Run("credit starts unpaid", func(t *testing.T) {
		tx := NewTransaction(day, Outbound, "m2", "p1", "Rice", W(4), M(150, "EGP"), Credit)
		if !tx.PaidAmount.IsZero() {
			t.Errorf("PaidAmount = %v, want zero", tx.PaidAmount)
		}
		if want := M(600, "EGP"); !tx.Outstanding().Equal(want) {
			t.Errorf("Outstanding() = %v, want %v", tx.Outstanding(), want)
		}
	})

	t.Run("zero weight is representable", func(t *testing.T) {
		tx := NewTransaction(day, Inbound, "m1", "p1", "Rice", W(0), M(100, "EGP"), Credit)
		if !tx.TotalAmount.IsZero() {
			t.Errorf("TotalAmount = %v, want zero", tx.TotalAmount)
		}
	})
}

func TestTransaction_JSONRoundTrip(t *testing.T) {
	day := MustParse("2025-03-10")
	tx := NewTransaction(day, Inbound, "m1", "p1", "Rice", W(10.5), M(100.25, "EGP"), Credit)
	tx.ID = "tx-1"

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	// Amounts persist as bare numbers next to a single currency field.
	if !strings.Contains(string(data), `"totalAmount":1052.625`) {
		t.Errorf("marshaled form = %s, want bare decimal totalAmount", data)
	}
	if !strings.Contains(string(data), `"currency":"EGP"`) {
		t.Errorf("marshaled form = %s, want a currency field", data)
	}

	var got Transaction
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !got.Equal(tx) {
		t.Errorf("round trip = %+v, want %+v", got, tx)
	}
}

func TestTransaction_LegacyRecordWithoutProduct(t *testing.T) {
	// Records persisted before products existed have no productId; they key
	// the inventory on the item name.
	raw := `{"id":"old-1","direction":"inbound","merchantId":"m1","itemName":"Rice","weight":5,"unitPrice":90,"totalAmount":450,"paidAmount":450,"currency":"EGP","settlement":"cash","date":"2024-11-02"}`

	var tx Transaction
	if err := json.Unmarshal([]byte(raw), &tx); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if tx.ProductID != "" {
		t.Errorf("ProductID = %q, want empty", tx.ProductID)
	}
	if got, want := tx.Key(), KeyForLabel("Rice"); got != want {
		t.Errorf("Key() = %v, want %v", got, want)
	}
	if !tx.Key().IsLegacy() {
		t.Error("Key().IsLegacy() = false, want true")
	}
}
